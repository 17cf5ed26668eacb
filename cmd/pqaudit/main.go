// Command pqaudit prints a quantum exposure report for a freshly derived
// secp256k1 key and the calldata cost of replacing ECDSA with Dilithium2.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/mahdiidarabi/pqc-audit/internal/config"
	"github.com/mahdiidarabi/pqc-audit/internal/report"
	"github.com/mahdiidarabi/pqc-audit/pkg/keyaudit"
	"github.com/mahdiidarabi/pqc-audit/pkg/log"
	"github.com/mahdiidarabi/pqc-audit/pkg/sigfootprint"
)

// DefaultPayload is the transaction payload both schemes sign.
var DefaultPayload = []byte("transfer(0xDEAd...BEEF, 50 ETH)")

// FixedSecretKey is the ECDSA secret used for the footprint analysis.
var FixedSecretKey = bytes.Repeat([]byte{0x01}, 32)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewZapLogger(conf.Log).WithName("pqaudit")
	if conf.DotEnvPath != "" {
		logger.Debug("loaded .env file", "path", conf.DotEnvPath)
	}

	if err := run(os.Stdout, conf, logger); err != nil {
		logger.Error("audit failed", "error", err)
		os.Exit(1)
	}
}

func run(out io.Writer, conf *config.Config, logger log.Logger) error {
	derivation, err := keyaudit.Derive()
	if err != nil {
		return fmt.Errorf("key derivation failed: %w", err)
	}
	logger.Info("derived keypair", "address", derivation.Address.Checksum())

	if err := report.WriteKeyReport(out, derivation); err != nil {
		return fmt.Errorf("failed to write key report: %w", err)
	}

	analyzer := sigfootprint.NewAnalyzer().
		WithEncoding(conf.ECDSAEncoding).
		WithLogger(logger)

	footprint, err := analyzer.Analyze(DefaultPayload, FixedSecretKey)
	if err != nil {
		return fmt.Errorf("footprint analysis failed: %w", err)
	}
	logger.Info("analyzed signature footprint",
		"ecdsa_encoding", conf.ECDSAEncoding.String(),
		"exceeds_baseline", footprint.Comparison.ExceedsBaseline,
	)

	fmt.Fprintln(out)
	if err := report.WriteFootprintReport(out, footprint); err != nil {
		return fmt.Errorf("failed to write footprint report: %w", err)
	}
	return nil
}
