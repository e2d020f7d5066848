// manifestdump replays a journal file through the cargo tracker and prints
// the final reconciled manifest. Debugging aid for odd journal sequences.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/jeranaias/edcargo-tui/internal/journal"
	"github.com/jeranaias/edcargo-tui/internal/manifest"
	"github.com/jeranaias/edcargo-tui/internal/ui/components"
)

func main() {
	rareFile := pflag.String("rare-file", "", "rare_commodity.csv path for rare flair")
	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: manifestdump [--rare-file=PATH] JOURNAL_FILE")
		os.Exit(2)
	}
	path := pflag.Arg(0)

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	session := manifest.NewSession("", *rareFile, nil)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		ev, err := journal.Decode(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %v\n", lineNo, err)
			continue
		}
		session.HandleEvent(ev)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: read %s: %v\n", path, err)
		os.Exit(1)
	}

	dump(session)
}

func dump(session *manifest.Session) {
	shipManifest := session.ShipManifest()
	capacity := session.NoteShipOccupied(shipManifest.Total)

	summary := components.Summary{
		Title:    "Ship Manifest",
		Occupied: shipManifest.Total,
		Capacity: capacity,
		Known:    true,
		Guessed:  session.ShipCapacityGuessed,
	}
	fmt.Println(summary.Text())
	printRows(components.Rows(shipManifest))

	if session.CurrentIsSRV {
		srvManifest := session.SRVManifest()
		srvSummary := components.Summary{
			Title:    "SRV Manifest",
			Occupied: srvManifest.Total,
		}
		if session.SRVCapacity != nil {
			srvSummary.Capacity = *session.SRVCapacity
			srvSummary.Known = true
		}
		fmt.Println()
		fmt.Println(srvSummary.Text())
		printRows(components.Rows(srvManifest))
	}

	fmt.Printf("\n%d missions tracked\n", session.Missions.Len())
}

func printRows(rows []components.Row) {
	for _, r := range rows {
		suffix := r.Suffix()
		if suffix != "" {
			suffix = " " + suffix
		}
		fmt.Printf("%6d %s %s%s\n", r.Count, r.Kind.Glyph(), r.Name, suffix)
	}
}
