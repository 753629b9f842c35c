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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-cantor/pkg/hbdecdsa"
	"github.com/consensys/go-cantor/pkg/hecc"
	"github.com/consensys/go-cantor/pkg/nonce"
)

// deriveCmd represents the derive command
var deriveCmd = &cobra.Command{
	Use:   "derive [flags] message",
	Short: "Derive a masked ECDSA nonce for a given key and message.",
	Long: `Run the Jacobian masking pipeline in isolation, printing the nonce k that
signing the message would consume.  Intended for interoperability testing.`,
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
			params  = hecc.Production()
		)
		//
		log.Debugf("deriving nonce over %s", params.Curve)
		//
		k, err := nonce.Derive(key, message, params.Law, params.Base, hbdecdsa.Order())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		//
		fmt.Printf("%064x\n", k)
	},
}

func init() {
	rootCmd.AddCommand(deriveCmd)
	deriveCmd.Flags().String("key", "", "hex-encoded private key bytes")
	deriveCmd.Flags().Bool("file", false, "treat message argument as a filename")
}
