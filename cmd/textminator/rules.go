package textminator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gpak-tools/textminator/pkg/config"
	"github.com/gpak-tools/textminator/pkg/errors"
	"github.com/gpak-tools/textminator/pkg/style"
	"github.com/gpak-tools/textminator/pkg/types"
	"github.com/gpak-tools/textminator/pkg/ui"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ruleDoc is the serialized form of a rule. Keyed by rule name it loads back
// through --config unchanged.
type ruleDoc struct {
	Regex       string `json:"regex" toml:"regex" yaml:"regex"`
	Replacement string `json:"replacement" toml:"replacement" yaml:"replacement"`
	Order       int    `json:"order" toml:"order" yaml:"order"`
	Enabled     bool   `json:"enabled" toml:"enabled" yaml:"enabled"`
}

// namedRuleDoc is the JSON list entry, which keeps execution order
type namedRuleDoc struct {
	Name string `json:"name"`
	ruleDoc
}

var rulesFormats = []string{"text", "json", "yaml", "toml", "properties"}

func newRulesCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		Long:    MsgRulesLong,
		Example: MsgRulesExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadRules(root)
			if err != nil {
				return err
			}
			return writeRules(cmd.OutOrStdout(), format, set)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", MsgFlagRulesFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return rulesFormats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// writeRules serializes set to w in the named format
func writeRules(w io.Writer, format string, set *config.RuleSet) error {
	switch strings.ToLower(format) {
	case "text":
		r := style.NewRenderer(ui.Resolve(ui.FormatAuto, w))
		_, err := fmt.Fprintln(w, r.RenderRules(sourceLabel(set.Source), set.Rules))
		return err

	case "json":
		docs := make([]namedRuleDoc, 0, len(set.Rules))
		for _, rule := range set.Rules {
			docs = append(docs, namedRuleDoc{Name: rule.Name(), ruleDoc: toDoc(rule)})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ruleDocs(set.Rules)); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode rules as yaml")
		}
		return enc.Close()

	case "toml":
		data, err := toml.Marshal(ruleDocs(set.Rules))
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode rules as toml")
		}
		_, err = w.Write(data)
		return err

	case "properties":
		props := make(map[string]interface{}, len(set.Rules)*4)
		for _, rule := range set.Rules {
			props[rule.Name()+config.SuffixRegex] = rule.Pattern().String()
			props[rule.Name()+config.SuffixReplacement] = rule.Replacement()
			props[rule.Name()+config.SuffixOrder] = rule.Order()
			props[rule.Name()+config.SuffixEnabled] = rule.Enabled()
		}
		data, err := config.Properties().Marshal(props)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode rules as properties")
		}
		_, err = w.Write(data)
		return err

	default:
		return errors.Newf(errors.ErrInvalidInput, MsgErrRulesFormat, format)
	}
}

func toDoc(rule *types.Rule) ruleDoc {
	return ruleDoc{
		Regex:       rule.Pattern().String(),
		Replacement: rule.Replacement(),
		Order:       rule.Order(),
		Enabled:     rule.Enabled(),
	}
}

func ruleDocs(rules []*types.Rule) map[string]ruleDoc {
	docs := make(map[string]ruleDoc, len(rules))
	for _, rule := range rules {
		docs[rule.Name()] = toDoc(rule)
	}
	return docs
}
