package fxp

// Core format constants. The FXP container layout is fixed; every offset here
// is part of the format itself.

var (
	// ContainerMagic opens every recognized preset file ("CcnK")
	ContainerMagic = []byte{0x43, 0x63, 0x6E, 0x4B}

	// fxMagic tags selecting the payload layout
	MagicParams = []byte("FxCk") // flat list of float parameters
	MagicChunk  = []byte("FPCh") // opaque plugin-defined chunk
)

const (
	// HeaderSize covers every fixed field through programName. The variable
	// payload starts immediately after.
	HeaderSize = 52

	OffsetContainerMagic = 0
	OffsetByteSize       = 4
	OffsetFxMagic        = 8
	OffsetVersion        = 12
	OffsetPluginCode     = 16
	OffsetCount          = 20 // numParams or chunkSize, layout dependent
	OffsetProgramName    = 24

	ProgramNameSize = 28
	CodeSize        = 4
)
