// Package report renders audit results as text tables.
package report

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"

	"github.com/mahdiidarabi/pqc-audit/pkg/keyaudit"
	"github.com/mahdiidarabi/pqc-audit/pkg/sigfootprint"
)

// WriteKeyReport writes the derived artifacts of d with their exposure
// classification, followed by the audit note.
func WriteKeyReport(w io.Writer, d *keyaudit.Derivation) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("QUANTUM VULNERABILITY REPORT")
	t.AppendHeader(table.Row{"#", "Artifact", "Value", "Exposure"})
	t.AppendSeparator()

	artifacts := d.Artifacts()
	for i, a := range artifacts {
		t.AppendRow(table.Row{i + 1, a.Name, hexutil.Encode(a.Bytes), a.Exposure})
	}
	t.Render()

	if _, err := fmt.Fprintf(w, "\nAUDIT NOTE:\n"); err != nil {
		return err
	}
	// Shor's algorithm maps the public key (#3) to the secret key (#1).
	if _, err := fmt.Fprintf(w, "A quantum computer running Shor's algorithm needs item #%d to find item #%d.\n",
		indexOf(artifacts, keyaudit.ArtifactRawPublicKey), indexOf(artifacts, keyaudit.ArtifactSecretKey)); err != nil {
		return err
	}
	for _, e := range []keyaudit.Exposure{keyaudit.ExposureSafe, keyaudit.ExposureDangerous} {
		if _, err := fmt.Fprintln(w, e.Note()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Checksummed address: %s\n", d.Address.Checksum())
	return err
}

func indexOf(artifacts []keyaudit.Artifact, name string) int {
	for i, a := range artifacts {
		if a.Name == name {
			return i + 1
		}
	}
	return 0
}

// WriteFootprintReport writes key sizes, signature sizes, the bloat factor and
// calldata gas of f, followed by the auditor's note.
func WriteFootprintReport(w io.Writer, f *sigfootprint.Footprint) error {
	classical := f.ECDSAGas.Scheme
	postQuantum := f.DilithiumGas.Scheme

	keys := table.NewWriter()
	keys.SetOutputMirror(w)
	keys.SetTitle("KEY DERIVATION")
	keys.AppendHeader(table.Row{"Key", "Bytes"})
	keys.AppendSeparator()
	keys.AppendRows([]table.Row{
		{postQuantum.String() + " public key", f.Keys.DilithiumPublicKey},
		{postQuantum.String() + " secret key", f.Keys.DilithiumSecretKey},
		{classical.String() + " public key", f.Keys.ECDSAPublicKey},
		{classical.String() + " secret key", f.Keys.ECDSASecretKey},
	})
	keys.Render()

	footprint := table.NewWriter()
	footprint.SetOutputMirror(w)
	footprint.SetTitle("DATA FOOTPRINT")
	footprint.AppendHeader(table.Row{"Signature", "Bytes"})
	footprint.AppendSeparator()
	footprint.AppendRow(table.Row{classical.String(), f.ECDSAGas.ByteCount})
	footprint.AppendRow(table.Row{postQuantum.String(), f.DilithiumGas.ByteCount})
	footprint.Render()

	if _, err := fmt.Fprintf(w, "Bloat factor: %sx larger\n", bloat(f.Comparison.BloatFactor)); err != nil {
		return err
	}

	gas := table.NewWriter()
	gas.SetOutputMirror(w)
	gas.SetTitle("GAS CALCULATIONS (L1 CALLDATA)")
	gas.AppendHeader(table.Row{"Scheme", "Bytes", "Gas/byte", "Gas"})
	gas.AppendSeparator()
	for _, g := range []sigfootprint.GasEstimate{f.ECDSAGas, f.DilithiumGas} {
		gas.AppendRow(table.Row{g.Scheme.String(), g.ByteCount, g.PerByteCost, g.TotalGas})
	}
	gas.Render()

	if _, err := fmt.Fprintf(w, "Extra gas required: %d gas\n", f.Comparison.ExtraGas); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nSigner address: %s\n", f.Address.Checksum()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\nAUDITOR'S NOTE:\n"); err != nil {
		return err
	}

	var err error
	if f.Comparison.ExceedsBaseline {
		_, err = fmt.Fprintf(w, "CRITICAL: %s signature data alone (%d gas) exceeds a standard L1 transfer (%d gas)!\n",
			postQuantum, f.DilithiumGas.TotalGas, sigfootprint.BaseTransferGas)
	} else {
		_, err = fmt.Fprintf(w, "%s signature data (%d gas) fits within a standard L1 transfer (%d gas).\n",
			postQuantum, f.DilithiumGas.TotalGas, sigfootprint.BaseTransferGas)
	}
	return err
}

// bloat renders a bloat factor with one decimal place.
func bloat(factor float64) string {
	return decimal.NewFromFloat(factor).StringFixed(1)
}
