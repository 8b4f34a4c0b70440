package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peterbraden/bitcoinjs-server/eckey"
)

var signCmd = &cobra.Command{
	Use:   "sign <keyfile>",
	Short: "Sign a 32-byte digest with a DER key file",
	Long: `Sign a 32-byte digest (hex) with the private key from a DER EC private
key file. Prints the DER-encoded ECDSA signature as hex.`,
	Args: cobra.ExactArgs(1),
	RunE: runSign,
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a DER ECDSA signature",
	Long: `Verify a DER-encoded ECDSA signature (hex) over a 32-byte digest (hex)
against a SEC1 public key (hex) or a DER key file. The three-way outcome of
the verification is printed; only a valid signature exits zero.`,
	RunE: runVerify,
}

func init() {
	signCmd.Flags().String("digest", "", "32-byte digest to sign (hex, required)")
	_ = signCmd.MarkFlagRequired("digest")

	verifyCmd.Flags().String("pub", "", "SEC1 public key (hex)")
	verifyCmd.Flags().String("key", "", "DER key file to take the public key from")
	verifyCmd.Flags().String("digest", "", "32-byte digest that was signed (hex, required)")
	verifyCmd.Flags().String("sig", "", "DER signature to check (hex, required)")
	_ = verifyCmd.MarkFlagRequired("digest")
	_ = verifyCmd.MarkFlagRequired("sig")
	verifyCmd.MarkFlagsOneRequired("pub", "key")
	verifyCmd.MarkFlagsMutuallyExclusive("pub", "key")

	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(verifyCmd)
}

func runSign(cmd *cobra.Command, args []string) error {
	digest, err := hexFlag(cmd, "digest")
	if err != nil {
		return err
	}

	k, err := readKeyFile(args[0])
	if err != nil {
		return err
	}
	defer k.Zero()

	sig, err := k.Sign(digest)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", hex.EncodeToString(sig))
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	digest, err := hexFlag(cmd, "digest")
	if err != nil {
		return err
	}
	sig, err := hexFlag(cmd, "sig")
	if err != nil {
		return err
	}

	var k *eckey.Key
	if keyPath, _ := cmd.Flags().GetString("key"); keyPath != "" {
		k, err = readKeyFile(keyPath)
		if err != nil {
			return err
		}
		defer k.Zero()
	} else {
		pub, err := hexFlag(cmd, "pub")
		if err != nil {
			return err
		}
		k = eckey.New()
		if err := k.SetPublic(pub); err != nil {
			return err
		}
	}

	result, err := k.Verify(digest, sig)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "signature %s\n", result)
	if result != eckey.VerifyValid {
		return fmt.Errorf("signature verification failed: %s", result)
	}
	return nil
}

// hexFlag decodes a required hex-valued flag.
func hexFlag(cmd *cobra.Command, name string) ([]byte, error) {
	raw, _ := cmd.Flags().GetString(name)
	b, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("flag --%s is not valid hex: %w", name, err)
	}
	return b, nil
}
