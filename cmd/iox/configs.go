package main

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	iox "github.com/iox-format/go-iox"
	"github.com/iox-format/go-iox/encode"
	"github.com/iox-format/go-iox/types"
)

type MainConfig struct {
	Config   string `cli:"name=config desc='TOML file with default settings (default $IOX_CONFIG)'"`
	Schema   string `cli:"name=s aliases=schema desc='schema file, definition text or YAML for .yaml and .yml'"`
	MaxDepth int    `cli:"name=depth desc='maximum object and array nesting, 0 for no limit'"`
	Color    bool   `cli:"name=color desc='output with color'"`
	Verbose  bool   `cli:"name=v desc='log progress to stderr'"`

	Vars types.Vars

	Out      string
	CloseOut func() error

	Main *cli.Command
	file *FileConfig
}

// FileConfig holds defaults read from a TOML file. Command line options
// take precedence.
type FileConfig struct {
	Schema   string         `toml:"schema"`
	MaxDepth int            `toml:"max_depth"`
	Color    *bool          `toml:"color"`
	Vars     map[string]any `toml:"vars"`
	Output   string         `toml:"output"`
	Indent   int            `toml:"indent"`
}

func loadFileConfig(path string) (*FileConfig, error) {
	fc := &FileConfig{}
	if _, err := toml.DecodeFile(path, fc); err != nil {
		return nil, fmt.Errorf("could not read config %q: %w", path, err)
	}
	return fc, nil
}

func (cfg *MainConfig) applyFile() error {
	path := cfg.Config
	if path == "" {
		path = os.Getenv("IOX_CONFIG")
	}
	if path == "" {
		cfg.file = &FileConfig{}
		return nil
	}
	fc, err := loadFileConfig(path)
	if err != nil {
		return err
	}
	cfg.file = fc
	if cfg.Schema == "" {
		cfg.Schema = fc.Schema
	}
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = fc.MaxDepth
	}
	for k, v := range fc.Vars {
		if _, set := cfg.Vars[k]; set {
			continue
		}
		if cfg.Vars == nil {
			cfg.Vars = types.Vars{}
		}
		cfg.Vars[k] = v
	}
	theLog.Debug("read config", "file", path)
	return nil
}

func (cfg *MainConfig) ioxOpts() []iox.Option {
	return []iox.Option{
		iox.WithMaxDepth(cfg.MaxDepth),
		iox.WithVars(cfg.Vars),
		iox.WithLogger(theLog),
	}
}

func (cfg *MainConfig) optSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

// colors returns the colors to write to w with, or nil for plain output.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	on := cfg.Color
	switch {
	case cfg.optSet("color"):
	case cfg.file != nil && cfg.file.Color != nil:
		on = *cfg.file.Color
	default:
		f, ok := w.(*os.File)
		on = ok && isatty.IsTerminal(f.Fd())
	}
	if !on {
		return nil
	}
	color.NoColor = false
	return encode.NewColors()
}

type TokensConfig struct {
	*MainConfig
	Comments bool `cli:"name=c desc='include comments'"`

	Tokens *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DecodeConfig struct {
	*MainConfig
	Format string `cli:"name=O aliases=ofmt desc='output format: json, yaml or msgpack'"`

	Decode *cli.Command
}

func (cfg *DecodeConfig) format() string {
	if cfg.Format == "" && cfg.file != nil {
		return cfg.file.Output
	}
	return cfg.Format
}

type EncodeConfig struct {
	*MainConfig
	Format string `cli:"name=I aliases=ifmt desc='input format: json or yaml'"`
	Header bool   `cli:"name=H aliases=header desc='write a header with the variables and schema'"`

	Encode *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Jobs int `cli:"name=j aliases=jobs desc='files checked at once, 0 for one per CPU'"`

	Check *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Indent int  `cli:"name=i aliases=indent desc='indent nested containers by n spaces'"`
	Wire   bool `cli:"name=wire desc='write without spaces'"`
	Diff   bool `cli:"name=d desc='show a diff instead of the result'"`
	Write  bool `cli:"name=w desc='write the result back to the file'"`

	Fmt *cli.Command
}

func (cfg *FmtConfig) encOpts(w io.Writer) []encode.EncodeOption {
	indent := cfg.Indent
	if indent == 0 && cfg.file != nil {
		indent = cfg.file.Indent
	}
	res := []encode.EncodeOption{
		encode.EncodeIndent(indent),
		encode.EncodeWire(cfg.Wire),
	}
	if !cfg.Diff && !cfg.Write {
		res = append(res, encode.EncodeColors(cfg.colors(w)))
	}
	return res
}

type PatchConfig struct {
	*MainConfig
	Header bool `cli:"name=H aliases=header desc='write a header with the variables and schema'"`

	Patch *cli.Command
}
