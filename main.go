package main

import (
	"digispark-uploader/cmd" // CLI commands and the upload flow
)

// main delegates to cmd.Execute.
//
// digispark-uploader is a one-shot operator tool for Digispark (ATtiny85)
// boards:
//   - keeps a private arduino-cli next to the executable, with the Digistump
//     board index registered and the digistump:avr core installed, and
//     remembers its path in CLIPath.txt so later runs skip the install
//   - downloads the Digispark-Scripts sketch collection on every run
//   - shows a numbered menu of sketches, compiles the chosen one and uploads
//     it once the operator has plugged the board in
//
// Every step runs in sequence. Any failure prints a message and exits non-zero;
// the operator simply runs the tool again.
func main() {
	cmd.Execute()
}
