// Copyright 2024 The Erigon Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/erigontech/mptproof/common"
	"github.com/erigontech/mptproof/trie"
)

var (
	keyFlag = cli.StringFlag{
		Name:     "key",
		Usage:    "hex-encoded trie key (with or without 0x prefix)",
		Required: true,
	}
	valueFlag = cli.StringFlag{
		Name:     "value",
		Usage:    "hex-encoded value",
		Required: true,
	}
	proofFlag = cli.StringFlag{
		Name:     "proof",
		Usage:    "hex-encoded RLP proof: a list of RLP-encoded trie nodes, root first",
		Required: true,
	}
	rootFlag = cli.StringFlag{
		Name:     "root",
		Usage:    "hex-encoded 32-byte trie root",
		Required: true,
	}
)

var verifyInclusionCommand = cli.Command{
	Action: withLogger(runVerifyInclusion),
	Name:   "verify-inclusion",
	Usage:  "verify that a proof shows key mapping to value under root",
	Flags:  []cli.Flag{&keyFlag, &valueFlag, &proofFlag, &rootFlag},
}

var verifyExclusionCommand = cli.Command{
	Action: withLogger(runVerifyExclusion),
	Name:   "verify-exclusion",
	Usage:  "verify that a proof shows key not mapping to value under root",
	Flags:  []cli.Flag{&keyFlag, &valueFlag, &proofFlag, &rootFlag},
}

var updateCommand = cli.Command{
	Action: withLogger(runUpdate),
	Name:   "update",
	Usage:  "compute the root resulting from inserting or overwriting key with value",
	Flags:  []cli.Flag{&keyFlag, &valueFlag, &proofFlag, &rootFlag},
}

func main() {
	app := cli.NewApp()
	app.Name = "mptproof"
	app.Usage = "verify and fold Merkle-Patricia trie proofs"
	app.Commands = []*cli.Command{
		&verifyInclusionCommand,
		&verifyExclusionCommand,
		&updateCommand,
	}
	app.UsageText = app.Name + ` [command] [flags]`

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withLogger wraps a command action with a zap logger, flushed on exit,
// matching the teacher's convention of constructing a fresh logger per
// invocation rather than threading a global.
func withLogger(action func(*cli.Context, *zap.Logger) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		defer logger.Sync() //nolint:errcheck

		return action(c, logger)
	}
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	return hex.DecodeString(s)
}

func parseArgs(c *cli.Context) (key, value, proof []byte, root common.Hash, err error) {
	if key, err = decodeHex(c.String(keyFlag.Name)); err != nil {
		return nil, nil, nil, common.Hash{}, fmt.Errorf("decoding --key: %w", err)
	}
	if value, err = decodeHex(c.String(valueFlag.Name)); err != nil {
		return nil, nil, nil, common.Hash{}, fmt.Errorf("decoding --value: %w", err)
	}
	if proof, err = decodeHex(c.String(proofFlag.Name)); err != nil {
		return nil, nil, nil, common.Hash{}, fmt.Errorf("decoding --proof: %w", err)
	}
	rootBytes, err := decodeHex(c.String(rootFlag.Name))
	if err != nil {
		return nil, nil, nil, common.Hash{}, fmt.Errorf("decoding --root: %w", err)
	}
	root = common.BytesToHash(rootBytes)
	return key, value, proof, root, nil
}

func runVerifyInclusion(c *cli.Context, logger *zap.Logger) error {
	key, value, proof, root, err := parseArgs(c)
	if err != nil {
		return err
	}
	ok, err := trie.VerifyInclusionProof(key, value, proof, root)
	if err != nil {
		logger.Error("inclusion proof rejected", zap.Error(err))
		return err
	}
	logger.Info("inclusion proof checked", zap.Bool("valid", ok))
	fmt.Println(ok)
	return nil
}

func runVerifyExclusion(c *cli.Context, logger *zap.Logger) error {
	key, value, proof, root, err := parseArgs(c)
	if err != nil {
		return err
	}
	ok, err := trie.VerifyExclusionProof(key, value, proof, root)
	if err != nil {
		logger.Error("exclusion proof rejected", zap.Error(err))
		return err
	}
	logger.Info("exclusion proof checked", zap.Bool("valid", ok))
	fmt.Println(ok)
	return nil
}

func runUpdate(c *cli.Context, logger *zap.Logger) error {
	key, value, proof, root, err := parseArgs(c)
	if err != nil {
		return err
	}
	newRoot, err := trie.Update(key, value, proof, root)
	if err != nil {
		logger.Error("update failed", zap.Error(err))
		return err
	}
	logger.Info("update computed", zap.String("newRoot", newRoot.String()))
	fmt.Println(newRoot.String())
	return nil
}
