package platform

import "runtime"

// EOL is the native line terminator for generated text files.
var EOL = lineEnding(runtime.GOOS)

func lineEnding(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}
