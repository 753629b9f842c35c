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
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/consensys/go-cantor/pkg/hbdecdsa"
)

// keygenCmd represents the keygen command
var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a fresh HB-DECDSA keypair.",
	Long: `Generate a secp256k1 keypair for the hybrid scheme, printing the private
scalar and the SEC1 uncompressed public key as hex.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		sk, err := hbdecdsa.GenerateKey(rand.Reader)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		//
		fmt.Printf("private: %s\n", hex.EncodeToString(sk.Bytes()))
		fmt.Printf("public:  %s\n", hex.EncodeToString(sk.Public().Bytes()))
	},
}

func init() {
	rootCmd.AddCommand(keygenCmd)
}
