package symbolic

// Defaults holds the CLI's default flag values for the execute command.
var Defaults = struct {
	MaxExecutionDepth int
	MemorySizeMiB     uint64
}{
	MaxExecutionDepth: 1000,
	MemorySizeMiB:     1,
}
