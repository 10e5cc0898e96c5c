// opdeck-tools dumps the shell's tool catalog as JSON, for hosts that want to
// advertise the same tool set the dialog knows how to present.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/opdeck/opdeck/src"
)

func main() {
	data, err := json.MarshalIndent(src.KnownTools(), "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "opdeck-tools:", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
