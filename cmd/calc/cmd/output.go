package cmd

import (
	"fmt"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// render writes v in the configured output format. text is used for the
// text format.
func (a *app) render(v any, text string) error {
	switch a.cfg.Output.Format {
	case "json":
		data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.out, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = a.out.Write(data)
		return err
	default:
		_, err := fmt.Fprintln(a.out, text)
		return err
	}
}
