package config

import (
	stderrors "errors"
	"os"
	"path/filepath"

	"github.com/gpak-tools/textminator/pkg/errors"
	"github.com/gpak-tools/textminator/pkg/logging"
	"github.com/gpak-tools/textminator/pkg/paths"
	"github.com/gpak-tools/textminator/pkg/types"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// RuleSet is the validated, ordered result of loading
type RuleSet struct {
	Rules  []*types.Rule
	Source Source
}

// Loader resolves the rule chain and builds a RuleSet
type Loader struct {
	executableDir func() (string, error)
	builtin       []byte
	logger        zerolog.Logger
}

// NewLoader returns a loader probing the real executable directory and the
// embedded rule file
func NewLoader() *Loader {
	return &Loader{
		executableDir: paths.ExecutableDir,
		builtin:       defaultConfig,
		logger:        logging.GetLogger("config"),
	}
}

// LoadRules loads rules with a default loader
func LoadRules(userPath string) (*RuleSet, error) {
	return NewLoader().Load(userPath)
}

// Load reads the first available source, materializes its rules and
// validates them. An empty userPath skips the explicit link of the chain.
func (l *Loader) Load(userPath string) (*RuleSet, error) {
	done := logging.LogOperationStart(l.logger, "load_rules")
	defer done()

	props, source, err := l.resolve(userPath)
	if err != nil {
		return nil, err
	}

	rules, err := ParseRules(props, l.logger)
	if err != nil {
		return nil, withSource(err, source)
	}

	if err := ValidateRules(rules, l.logger); err != nil {
		return nil, withSource(err, source)
	}

	l.logger.Info().
		Str("source", source.String()).
		Int("rules", len(rules)).
		Int("enabled", types.CountEnabled(rules)).
		Msg("Rules loaded")

	return &RuleSet{Rules: rules, Source: source}, nil
}

func (l *Loader) resolve(userPath string) (map[string]string, Source, error) {
	if userPath != "" {
		return l.loadUser(userPath)
	}

	props, source, found, err := l.loadAdjacent()
	if err != nil || found {
		return props, source, err
	}

	l.logger.Warn().Msg("Fallback to built-in config file")
	return l.loadBuiltin()
}

func (l *Loader) loadUser(userPath string) (map[string]string, Source, error) {
	path := paths.ExpandHome(userPath)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	source := Source{Kind: SourceUser, Path: path}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, source, errors.Newf(errors.ErrConfigSource, "custom config file not found: %s", path).
				WithDetail("path", path)
		}
		return nil, source, errors.Wrapf(err, errors.ErrConfigSource, "failed to access custom config file %s", path).
			WithDetail("path", path)
	}
	if info.IsDir() {
		return nil, source, errors.Newf(errors.ErrConfigSource, "custom config path is a directory: %s", path).
			WithDetail("path", path)
	}

	props, err := loadFile(path)
	if err != nil {
		return nil, source, errors.Wrapf(err, errors.ErrConfigSource, "failed to load custom config file %s", path).
			WithDetail("path", path)
	}
	if len(props) == 0 {
		return nil, source, errors.Newf(errors.ErrConfigSource, "custom config file %s doesn't contain any rules", path).
			WithDetail("path", path)
	}

	l.logger.Debug().Str("path", path).Int("keys", len(props)).Msg("Loaded custom config file")
	return props, source, nil
}

func (l *Loader) loadAdjacent() (map[string]string, Source, bool, error) {
	dir, err := l.executableDir()
	if err != nil {
		l.logger.Debug().Err(err).Msg("Cannot locate executable, skipping adjacent config file")
		return nil, Source{}, false, nil
	}

	path := paths.AdjacentConfigPath(dir)
	source := Source{Kind: SourceAdjacent, Path: path}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		l.logger.Debug().Str("path", path).Msg("No config file next to the executable")
		return nil, source, false, nil
	}

	props, err := loadFile(path)
	if err != nil {
		return nil, source, true, errors.Wrapf(err, errors.ErrConfigSource, "failed to load config file %s", path).
			WithDetail("path", path)
	}

	l.logger.Debug().Str("path", path).Int("keys", len(props)).Msg("Loaded adjacent config file")
	return props, source, true, nil
}

func (l *Loader) loadBuiltin() (map[string]string, Source, error) {
	source := Source{Kind: SourceBuiltin}
	if len(l.builtin) == 0 {
		return nil, source, errors.New(errors.ErrInternal, "no built-in config file found")
	}

	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: l.builtin}, Properties()); err != nil {
		return nil, source, errors.Wrap(err, errors.ErrInternal, "failed to parse built-in config file")
	}

	return flatten(k), source, nil
}

// loadFile reads a rule file with the parser matching its extension
func loadFile(path string) (map[string]string, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), ParserFor(path)); err != nil {
		return nil, err
	}
	return flatten(k), nil
}

// flatten renders every leaf of k under its dotted key as a string
func flatten(k *koanf.Koanf) map[string]string {
	all := k.All()
	props := make(map[string]string, len(all))
	for key, v := range all {
		props[key] = stringValue(v)
	}
	return props
}

func withSource(err error, source Source) error {
	var tmErr *errors.TextminatorError
	if stderrors.As(err, &tmErr) {
		tmErr.WithDetail("source", source.String())
	}
	return err
}
