package cli

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "eckeyctl",
	Short: "Manage secp256k1 keys and ECDSA signatures",
	Long: `eckeyctl generates secp256k1 key pairs, inspects DER key files, and
signs and verifies 32-byte digests with DER-encoded ECDSA signatures.

Examples:
  eckeyctl generate --out wallet.der
  eckeyctl inspect wallet.der
  eckeyctl sign wallet.der --digest <hex>
  eckeyctl verify --pub <hex> --digest <hex> --sig <hex>`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	viper.SetEnvPrefix("ECKEYCTL")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// newLogger builds the CLI logger. Key material is never logged.
func newLogger() hclog.Logger {
	level := hclog.Warn
	if viper.GetBool("verbose") {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:  "eckeyctl",
		Level: level,
	})
}
