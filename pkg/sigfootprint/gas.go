package sigfootprint

import "fmt"

const (
	// CalldataGasPerByte is the calldata price modelled for every signature byte.
	CalldataGasPerByte = 16

	// BaseTransferGas is the gas of a plain value transfer on L1.
	BaseTransferGas = 21000
)

// GasEstimate prices a signature as calldata.
type GasEstimate struct {
	Scheme      Scheme
	ByteCount   int
	PerByteCost int
	TotalGas    int
}

// EstimateGas prices rec at CalldataGasPerByte.
func EstimateGas(rec *SignatureRecord) GasEstimate {
	return GasEstimate{
		Scheme:      rec.Scheme,
		ByteCount:   rec.SizeBytes,
		PerByteCost: CalldataGasPerByte,
		TotalGas:    rec.SizeBytes * CalldataGasPerByte,
	}
}

// FootprintComparison compares a post-quantum signature against a classical one.
type FootprintComparison struct {
	BloatFactor     float64 // post-quantum bytes / classical bytes
	ExtraGas        int     // post-quantum gas - classical gas
	ExceedsBaseline bool    // post-quantum gas > BaseTransferGas
}

// Compare computes the FootprintComparison of postQuantum over classical.
// A classical estimate with no bytes fails with ErrDegenerateInput.
func Compare(classical, postQuantum GasEstimate) (FootprintComparison, error) {
	if classical.ByteCount <= 0 {
		return FootprintComparison{}, fmt.Errorf("%w: %s signature has %d bytes", ErrDegenerateInput, classical.Scheme, classical.ByteCount)
	}

	return FootprintComparison{
		BloatFactor:     float64(postQuantum.ByteCount) / float64(classical.ByteCount),
		ExtraGas:        postQuantum.TotalGas - classical.TotalGas,
		ExceedsBaseline: postQuantum.TotalGas > BaseTransferGas,
	}, nil
}
