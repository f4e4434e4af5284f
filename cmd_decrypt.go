package main

import (
	"os"

	"github.com/go-i2p/go-casc/lib/casc"
	"github.com/go-i2p/go-casc/lib/config"
	"github.com/go-i2p/go-casc/lib/util"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlags binds command flags to viper keys. It runs per command so
// flags shared by several commands do not shadow each other.
func bindFlags(flags *pflag.FlagSet, bindings map[string]string) error {
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return oops.Wrapf(err, "binding --%s", flag)
		}
	}
	return nil
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output-dir", "o", "", "directory for output files (default: next to input)")
	cmd.Flags().String("suffix", "", "suffix appended to output file names")
	cmd.Flags().BoolP("force", "f", false, "overwrite existing output files")
}

var outputFlags = map[string]string{
	"output.dir":    "output-dir",
	"output.suffix": "suffix",
	"output.force":  "force",
}

func loadConfig(cmd *cobra.Command, bindings map[string]string) (*config.Config, error) {
	if err := bindFlags(cmd.Flags(), bindings); err != nil {
		return nil, err
	}
	cfg := config.CurrentConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFrames(paths []string) ([][]byte, error) {
	frames := make([][]byte, len(paths))
	for i, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, oops.Wrapf(err, "reading frame %s", p)
		}
		frames[i] = data
	}
	return frames, nil
}

func writeOutputs(cfg *config.Config, inputs []string, outputs [][]byte) error {
	for i, in := range inputs {
		out := cfg.OutputPath(in)
		if !cfg.Output.Force && util.CheckFileExists(out) {
			return oops.Errorf("%s exists, use --force to overwrite", out)
		}
		if err := os.WriteFile(out, outputs[i], 0o644); err != nil {
			return oops.Wrapf(err, "writing %s", out)
		}
		log.WithFields(logrus.Fields{
			"input":  in,
			"output": out,
			"length": len(outputs[i]),
		}).Debug("Wrote frame")
	}
	return nil
}

func newDecryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt FRAME...",
		Short: "Decrypt encrypted frames, one frame per file",
		Long: "Decrypt encrypted frames, one frame per file. The n-th file is\n" +
			"decrypted as frame start-index+n of the same archive file.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bindings := map[string]string{
				"decrypt.workers":     "workers",
				"decrypt.start_index": "start-index",
			}
			for k, v := range outputFlags {
				bindings[k] = v
			}
			cfg, err := loadConfig(cmd, bindings)
			if err != nil {
				return err
			}

			frames, err := readFrames(args)
			if err != nil {
				return err
			}
			plaintexts, err := casc.DecryptFrames(cmd.Context(), frames, cfg.Decrypt.StartIndex, cfg.Decrypt.Workers)
			if err != nil {
				return oops.Wrapf(err, "decrypt failed (%s)", casc.StatusOf(err))
			}
			return writeOutputs(cfg, args, plaintexts)
		},
	}
	cmd.Flags().IntP("workers", "w", 0, "frames decrypted in parallel")
	cmd.Flags().Uint32P("start-index", "i", 0, "frame index of the first file")
	addOutputFlags(cmd)
	return cmd
}

func newCopyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy FRAME...",
		Short: "Copy frames stored without encryption",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, outputFlags)
			if err != nil {
				return err
			}
			frames, err := readFrames(args)
			if err != nil {
				return err
			}
			outputs := make([][]byte, len(frames))
			for i, data := range frames {
				out, err := casc.DirectCopy(make([]byte, 0, len(data)), data)
				if err != nil {
					return oops.Wrapf(err, "copying %s (%s)", args[i], casc.StatusOf(err))
				}
				outputs[i] = out
			}
			return writeOutputs(cfg, args, outputs)
		},
	}
	addOutputFlags(cmd)
	return cmd
}
