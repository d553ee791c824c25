package cli

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/unhappydog/tgen/internal/core"
	"github.com/unhappydog/tgen/internal/log"
	"github.com/unhappydog/tgen/internal/util"
)

// Flags create flags struct. the users flags go into this, this will be passed to the converter
type Flags struct {
	TaggerModel  string `short:"m" long:"tagger-model" yaml:"taggerModel" env:"TGEN_TAGGER_MODEL" description:"Tagger model file (form, lemma, tag, count TSV)"`
	SurfaceForms string `short:"f" long:"surface-forms" yaml:"surfaceForms" env:"TGEN_SURFACE_FORMS" description:"Surface forms JSON file"`
	AbstSlots    string `short:"a" long:"abst-slots" yaml:"abstSlots" env:"TGEN_ABST_SLOTS" description:"Comma-separated list of slots to be delexicalized"`
	Split        string `short:"s" long:"split" yaml:"split" description:"Colon-separated sizes of splits (e.g.: 3:1:1); out_prefix then lists one name per part"`
	Db           string `long:"db" yaml:"db" description:"Also store every example in this SQLite database"`
	Config       string `long:"config" description:"Path to YAML config file"`
	EnvFile      string `long:"env-file" description:"Path to a .env file with TGEN_* defaults"`
	Debug        int    `long:"debug" yaml:"debug" default:"0" description:"Set debug level (0=off, 1=basic, 2=detailed, 3=trace)"`
	Locale       string `long:"locale" yaml:"locale" description:"Message language (e.g. en, cs); defaults to the environment"`

	InputDA   string `yaml:"-"`
	InputText string `yaml:"-"`
	OutPrefix string `yaml:"-"`
}

var errUsage = errors.New("usage: tgen-convert [options] [tagger_model surface_forms] input_da input_text out_prefix")

// Init parses the command line. Values are taken, from weakest to strongest,
// from defaults, the env file, the YAML config and explicit flags.
func Init(args []string) (ret *Flags, err error) {
	ret = &Flags{}

	// honor --debug while loading the env and config files
	if level, convErr := strconv.Atoi(findValue(args, "--debug")); convErr == nil {
		log.SetLevel(log.LevelFromInt(level))
	}

	envFile := findValue(args, "--env-file")
	if envFile == "" {
		if envFile, err = util.GetDefaultEnvPath(); err != nil {
			return
		}
	}
	if envFile != "" {
		if err = godotenv.Load(envFile); err != nil {
			err = fmt.Errorf("load env file %s: %w", envFile, err)
			return
		}
		log.Debug(log.Detailed, "loaded env file %s\n", envFile)
	}

	parser := flags.NewParser(ret, flags.HelpFlag)
	parser.Usage = "[options] [tagger_model surface_forms] input_da input_text out_prefix"

	var rest []string
	if rest, err = parser.ParseArgs(args); err != nil {
		return
	}

	if ret.Config == "" {
		if ret.Config, err = util.GetDefaultConfigPath(); err != nil {
			return
		}
	}
	if ret.Config != "" {
		if err = ret.applyConfig(ret.Config, explicitOptions(parser)); err != nil {
			return
		}
	}

	if err = ret.setPositionals(rest); err != nil {
		return
	}
	err = ret.resolvePaths()
	return
}

func (o *Flags) setPositionals(rest []string) error {
	switch len(rest) {
	case 5:
		o.TaggerModel, o.SurfaceForms = rest[0], rest[1]
		rest = rest[2:]
	case 3:
	default:
		return errUsage
	}
	o.InputDA, o.InputText, o.OutPrefix = rest[0], rest[1], rest[2]
	if o.TaggerModel == "" {
		return errUsage
	}
	return nil
}

// applyConfig copies values from a YAML config file into every field that
// was not given explicitly on the command line.
func (o *Flags) applyConfig(path string, explicit map[string]bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var fromFile Flags
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	dst := reflect.ValueOf(o).Elem()
	src := reflect.ValueOf(fromFile)
	for i := 0; i < dst.NumField(); i++ {
		field := dst.Type().Field(i)
		long := field.Tag.Get("long")
		if long == "" || field.Tag.Get("yaml") == "" || explicit[long] {
			continue
		}
		if value := src.Field(i); !value.IsZero() {
			dst.Field(i).Set(value)
			log.Debug(log.Detailed, "config %s: %s=%v\n", path, long, value.Interface())
		}
	}
	return nil
}

func (o *Flags) resolvePaths() (err error) {
	for _, path := range []*string{&o.TaggerModel, &o.SurfaceForms, &o.InputDA, &o.InputText, &o.Db} {
		if *path == "" {
			continue
		}
		if *path, err = util.GetAbsolutePath(*path); err != nil {
			return
		}
	}
	return
}

// AbstSlotList returns the abstracted slot names.
func (o *Flags) AbstSlotList() []string {
	if o.AbstSlots == "" {
		return nil
	}
	ret := strings.Split(o.AbstSlots, ",")
	for i := range ret {
		ret[i] = strings.TrimSpace(ret[i])
	}
	return ret
}

// Job returns the conversion job described by the flags.
func (o *Flags) Job() core.Job {
	return core.Job{
		InputDA:   o.InputDA,
		InputText: o.InputText,
		OutPrefix: o.OutPrefix,
		Split:     o.Split,
	}
}

// explicitOptions returns the long names of options set on the command line
// (not from defaults or environment).
func explicitOptions(parser *flags.Parser) map[string]bool {
	ret := map[string]bool{}
	for _, opt := range parser.Command.Group.Options() {
		if opt.IsSet() && !opt.IsSetDefault() {
			ret[opt.LongName] = true
		}
	}
	return ret
}

// findValue picks an option value out of raw args before parsing.
func findValue(args []string, name string) string {
	for i, arg := range args {
		if arg == name && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(arg, name+"=") {
			return strings.TrimPrefix(arg, name+"=")
		}
	}
	return ""
}
