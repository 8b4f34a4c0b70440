package cli

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/peterbraden/bitcoinjs-server/eckey"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new secp256k1 key pair",
	Long: `Generate a fresh secp256k1 key pair and write it as a DER EC private
key. With --out the key is written to a file readable only by the current
user; otherwise the DER bytes are printed as hex on stdout.`,
	RunE: runGenerate,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <keyfile>",
	Short: "Show the public material of a DER key file",
	Long: `Decode a DER EC private key file and print its public key and derived
addresses. The private scalar is only printed with --show-private.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	generateCmd.Flags().String("out", "", "write the DER key to this file instead of stdout")
	inspectCmd.Flags().Bool("show-private", false, "also print the private scalar (hex)")

	_ = viper.BindPFlag("out", generateCmd.Flags().Lookup("out"))

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	k, err := eckey.Generate()
	if err != nil {
		return err
	}
	defer k.Zero()

	der, err := k.ToDER()
	if err != nil {
		return err
	}

	out := viper.GetString("out")
	if out != "" {
		if err := os.WriteFile(out, der, 0o600); err != nil {
			return fmt.Errorf("write key file: %w", err)
		}
		logger.Debug("key written", "path", out)
		fmt.Fprintf(cmd.OutOrStdout(), "Key written to %s\n", out)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Private key (DER): %s\n", hex.EncodeToString(der))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Public key:        %s\n", hex.EncodeToString(k.PublicCompressed()))
	fmt.Fprintf(cmd.OutOrStdout(), "Address (hash160): %s\n", hex.EncodeToString(k.Address()))
	fmt.Fprintf(cmd.OutOrStdout(), "Ethereum address:  %s\n", k.EthereumAddress())
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	k, err := readKeyFile(args[0])
	if err != nil {
		return err
	}
	defer k.Zero()

	fmt.Fprintf(cmd.OutOrStdout(), "Public key (compressed):   %s\n", hex.EncodeToString(k.PublicCompressed()))
	fmt.Fprintf(cmd.OutOrStdout(), "Public key (uncompressed): %s\n", hex.EncodeToString(k.Public()))
	fmt.Fprintf(cmd.OutOrStdout(), "Address (hash160):         %s\n", hex.EncodeToString(k.Address()))
	fmt.Fprintf(cmd.OutOrStdout(), "Ethereum address:          %s\n", k.EthereumAddress())

	showPrivate, _ := cmd.Flags().GetBool("show-private")
	if showPrivate {
		fmt.Fprintf(cmd.OutOrStdout(), "Private scalar:            %s\n", hex.EncodeToString(k.Private()))
	}
	return nil
}

// readKeyFile loads and decodes a DER EC private key file.
func readKeyFile(path string) (*eckey.Key, error) {
	der, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	k, err := eckey.FromDER(der)
	if err != nil {
		return nil, err
	}
	return k, nil
}
