package domain

import "time"

// Category is one label from the fixed classification taxonomy.
type Category string

const (
	CategoryL1L2    Category = "L1/L2"
	CategoryPerpDEX Category = "Perp/DEX"
	CategoryDEX     Category = "DEX"
	CategoryDeFi    Category = "DeFi"
	CategoryNFT     Category = "NFT"
	CategoryGaming  Category = "Gaming"
	CategoryAIInfra Category = "AI/Infra"
	CategoryGeneral Category = "General"
)

// SignalKind distinguishes the three candidate lists of a radar pass.
type SignalKind string

const (
	SignalRaise   SignalKind = "RAISE"
	SignalQuality SignalKind = "QUALITY"
	SignalUsage   SignalKind = "USAGE"
)

// RunState is the terminal state of one radar pass. Neither value is an
// error.
type RunState string

const (
	RunCompleted RunState = "COMPLETED"
	RunNoSignals RunState = "NO_SIGNALS"
)

// RunReport summarizes one finished radar pass.
type RunReport struct {
	StartedAt   time.Time
	State       RunState
	Sent        int
	RaiseSent   int
	QualitySent int
	UsageSent   int
}

// ProtocolSignalID tags a protocol identifier for the dedup registry.
// Protocol and raise identifiers live in disjoint namespaces inside one
// registry so an unrelated raise sharing a protocol's literal name can never
// suppress it.
func ProtocolSignalID(identifier string) string {
	return "protocol:" + identifier
}

// RaiseSignalID tags a raise project name for the dedup registry.
func RaiseSignalID(project string) string {
	return "raise:" + project
}
