/*
rosarium is a terminal companion for praying the Rosary.

It tracks the exact place on the beads, picks the mysteries of the day from
the liturgical calendar and shows the prayers in Latin, English, German or
Slavonic, optionally with recordings.

Usage:

	rosarium [command] [flags]

Commands:

	rosarium            Start the interactive interface
	rosarium calendar   Print the feasts of a year
	rosarium mystery    Print the mysteries of the day
	rosarium walk       Print every step of the Rosary
	rosarium version    Print version information

Configuration is read from the environment and an optional .env file, see
ROSARIUM_PRAYER_DIR, ROSARIUM_LANGUAGE, ROSARIUM_AUDIO and LOG_FILE.
*/
package main

import (
	"os"

	"github.com/emysliwietz/rosarium/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
