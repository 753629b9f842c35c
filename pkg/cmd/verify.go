// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"github.com/consensys/go-cantor/pkg/hbdecdsa"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [flags] message",
	Short: "Verify an HB-DECDSA signature.",
	Long: `Verify a signature under standard ECDSA rules for a SEC1-encoded secp256k1
public key.  Exits non-zero when the signature does not verify.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		var (
			pub     = readHexFlag(cmd, "key")
			rBytes  = readHexFlag(cmd, "r")
			sBytes  = readHexFlag(cmd, "s")
			message = readMessage(cmd, args[0])
		)
		//
		vk, err := hbdecdsa.VerifyingKeyFromBytes(pub)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		//
		sig := hbdecdsa.Signature{
			R: new(big.Int).SetBytes(rBytes),
			S: new(big.Int).SetBytes(sBytes),
		}
		//
		if !vk.Verify(message, sig) {
			fmt.Println("signature invalid")
			os.Exit(1)
		}
		//
		fmt.Println("signature valid")
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().String("key", "", "hex-encoded SEC1 uncompressed public key")
	verifyCmd.Flags().String("r", "", "hex-encoded signature component r")
	verifyCmd.Flags().String("s", "", "hex-encoded signature component s")
	verifyCmd.Flags().Bool("file", false, "treat message argument as a filename")
}
