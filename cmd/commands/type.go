package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/dialpad/internal/cli"
	"github.com/pluqqy/dialpad/pkg/edit"
	"github.com/pluqqy/dialpad/pkg/field"
)

var (
	typePaste   bool
	typeNoFocus bool
)

// KeyKind identifies a replayed keystroke
type KeyKind string

const (
	KeyText      KeyKind = "text"
	KeyBackspace KeyKind = "<bs>"
	KeyDelete    KeyKind = "<del>"
	KeyLeft      KeyKind = "<left>"
	KeyRight     KeyKind = "<right>"
	KeyHome      KeyKind = "<home>"
	KeyEnd       KeyKind = "<end>"
)

// Key is one keystroke; Text is only set for KeyText
type Key struct {
	Kind KeyKind
	Text string
}

func (k Key) String() string {
	if k.Kind == KeyText {
		return fmt.Sprintf("%q", k.Text)
	}
	return string(k.Kind)
}

// TypeStep records the field after one keystroke
type TypeStep struct {
	Key      string `json:"key" yaml:"key"`
	Text     string `json:"text" yaml:"text"`
	Caret    int    `json:"caret" yaml:"caret"`
	Region   string `json:"region" yaml:"region"`
	Rejected bool   `json:"rejected,omitempty" yaml:"rejected,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ParseKeys turns arguments into keystrokes. Special keys are written in
// angle brackets; other text is typed one rune at a time, or as a single
// paste when paste is set.
func ParseKeys(args []string, paste bool) ([]Key, error) {
	var keys []Key
	for _, arg := range args {
		for arg != "" {
			if strings.HasPrefix(arg, "<") {
				end := strings.Index(arg, ">")
				if end < 0 {
					return nil, fmt.Errorf("unterminated key in %q", arg)
				}
				kind := KeyKind(strings.ToLower(arg[:end+1]))
				switch kind {
				case KeyBackspace, KeyDelete, KeyLeft, KeyRight, KeyHome, KeyEnd:
				default:
					return nil, fmt.Errorf("unknown key %s (use <bs>, <del>, <left>, <right>, <home> or <end>)", arg[:end+1])
				}
				keys = append(keys, Key{Kind: kind})
				arg = arg[end+1:]
				continue
			}

			text := arg
			if i := strings.Index(arg, "<"); i >= 0 {
				text = arg[:i]
			}
			arg = arg[len(text):]
			if paste {
				keys = append(keys, Key{Kind: KeyText, Text: text})
				continue
			}
			for _, r := range text {
				keys = append(keys, Key{Kind: KeyText, Text: string(r)})
			}
		}
	}
	return keys, nil
}

// Replay feeds keys into f and records every step
func Replay(f *field.Field, keys []Key) []TypeStep {
	steps := make([]TypeStep, 0, len(keys))
	for _, key := range keys {
		var (
			result edit.Result
			err    error
		)
		switch key.Kind {
		case KeyText:
			result, err = f.Insert(key.Text)
		case KeyBackspace:
			result, err = f.Backspace()
		case KeyDelete:
			result, err = f.DeleteForward()
		case KeyLeft:
			f.MoveCaret(-1)
		case KeyRight:
			f.MoveCaret(1)
		case KeyHome:
			f.SetCaret(0)
		case KeyEnd:
			f.SetCaret(len([]rune(f.Text())))
		}

		step := TypeStep{
			Key:      key.String(),
			Text:     f.Text(),
			Caret:    f.Caret(),
			Region:   f.Region(),
			Rejected: result.Rejected,
		}
		if err != nil {
			step.Error = err.Error()
		}
		steps = append(steps, step)
	}
	return steps
}

// NewTypeCommand creates the type command
func NewTypeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "type <keys>...",
		Short: "Replay keystrokes through the phone field",
		Long: `Replay keystrokes through the phone field and print the text and
caret after each one. The caret is drawn as "|".

Plain text is typed one character at a time (or pasted whole with --paste).
Special keys: <bs>, <del>, <left>, <right>, <home>, <end>.

The field is focused first, which seeds it with the international prefix
of the region; use --no-focus to start from an empty field.

Examples:
  dialpad type 6502530000
  dialpad type 650 "<left><left><bs>"
  dialpad type --region GB --paste 2079460000`,
		Args: cobra.MinimumNArgs(1),
		RunE: runType,
	}

	cmd.Flags().BoolVar(&typePaste, "paste", false, "Insert each text argument in one edit")
	cmd.Flags().BoolVar(&typeNoFocus, "no-focus", false, "Do not focus the field before typing")

	return cmd
}

func runType(cmd *cobra.Command, args []string) error {
	keys, err := ParseKeys(args, typePaste)
	if err != nil {
		return err
	}

	ctx, err := NewContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	f := ctx.NewField()
	if !typeNoFocus {
		f.BeginEditing()
	}
	start := TypeStep{Key: "start", Text: f.Text(), Caret: f.Caret(), Region: f.Region()}
	steps := append([]TypeStep{start}, Replay(f, keys)...)

	out := cmd.OutOrStdout()
	if cli.OutputFormat(outputFormat) != cli.FormatText {
		return cli.OutputResults(out, outputFormat, steps)
	}

	table := cli.NewTableFormatter(out)
	table.Header("KEY", "TEXT", "REGION", "NOTE")
	for _, s := range steps {
		note := ""
		switch {
		case s.Error != "":
			note = s.Error
		case s.Rejected:
			note = "rejected"
		}
		table.Row(s.Key, cli.ShowCaret(s.Text, s.Caret), s.Region, note)
	}
	table.Flush()

	if f.Valid() {
		e164, _ := f.E164()
		cli.PrintSuccess("Valid number %s", e164)
	}
	return nil
}
