package main

import (
	"encoding/hex"
	"os"
	"strconv"
	"strings"

	"github.com/go-i2p/go-casc/lib/casc"
	"github.com/go-i2p/go-casc/lib/casc/frame"
	"github.com/go-i2p/go-casc/lib/casc/keys"
	"github.com/go-i2p/go-casc/lib/util"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

func parseKeyName(s string) (uint64, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	name, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, oops.Wrapf(err, "key name %q", s)
	}
	return name, nil
}

func newEncryptCmd() *cobra.Command {
	var (
		keyName string
		ivHex   string
		index   uint32
		force   bool
	)
	cmd := &cobra.Command{
		Use:   "encrypt IN OUT",
		Short: "Build a Salsa20 frame from a plaintext file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := parseKeyName(keyName)
			if err != nil {
				return err
			}
			iv, err := hex.DecodeString(ivHex)
			if err != nil {
				return oops.Wrapf(err, "iv %q", ivHex)
			}
			h, err := frame.NewSalsa20Header(name, iv)
			if err != nil {
				return err
			}

			plaintext, err := os.ReadFile(args[0])
			if err != nil {
				return oops.Wrapf(err, "reading %s", args[0])
			}
			data, err := casc.EncryptFrame(keys.Builtin, h, index, plaintext)
			if err != nil {
				return err
			}
			if !force && util.CheckFileExists(args[1]) {
				return oops.Errorf("%s exists, use --force to overwrite", args[1])
			}
			return os.WriteFile(args[1], data, 0o644)
		},
	}
	cmd.Flags().StringVarP(&keyName, "key-name", "k", "", "key name in hex")
	cmd.Flags().StringVar(&ivHex, "iv", "", "4- or 8-byte IV in hex")
	cmd.Flags().Uint32VarP(&index, "index", "i", 0, "frame index")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite OUT")
	_ = cmd.MarkFlagRequired("key-name")
	_ = cmd.MarkFlagRequired("iv")
	return cmd
}
