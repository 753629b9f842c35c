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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-cantor/pkg/hbdecdsa"
)

// signCmd represents the sign command
var signCmd = &cobra.Command{
	Use:   "sign [flags] message",
	Short: "Produce a deterministic HB-DECDSA signature.",
	Long: `Sign a message with a secp256k1 key, deriving the nonce through the
hyperelliptic Jacobian masking layer.  The signature prints as r and s in hex,
each 32 bytes, and verifies under standard ECDSA rules.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		var (
			key     = readHexFlag(cmd, "key")
			message = readMessage(cmd, args[0])
		)
		//
		sk, err := hbdecdsa.NewSigningKey(new(big.Int).SetBytes(key))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		//
		sig, err := sk.Sign(message)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		//
		log.Debugf("signed %d byte message", len(message))
		//
		fmt.Printf("r: %064x\n", sig.R)
		fmt.Printf("s: %064x\n", sig.S)
	},
}

func init() {
	rootCmd.AddCommand(signCmd)
	signCmd.Flags().String("key", "", "hex-encoded private key bytes")
	signCmd.Flags().Bool("file", false, "treat message argument as a filename")
}
