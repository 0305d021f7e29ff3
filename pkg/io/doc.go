// Package io writes and reads the results of an antenna analysis.
//
// # Overview
//
// Three sinks are provided, each suited to a different consumer:
//
//   - JSON reports ([WriteJSON], [ExportJSON]) for tools and the HTTP API
//   - BSON dumps ([WriteBinary], [ReadBinary]) as a compact binary snapshot
//   - Text matrices ([WriteMatrix]) for eyeballing a grid with its effects
//
// # JSON Format
//
// A report carries a run ID, the tool version, grid bounds, vertices,
// directed edges and effect points:
//
//	{
//	  "run_id": "6f1c...",
//	  "version": "v0.3.0",
//	  "width": 3, "height": 3,
//	  "vertices": [{"id": 0, "frequency": "A", "x": 0, "y": 0}],
//	  "edges": [{"from": 0, "to": 2}],
//	  "effects": [{"x": 2, "y": 2, "source": 2, "partner": 0}]
//	}
//
// Effect sources and partners refer to vertex IDs. [ReadJSON] validates the
// references and [Report.Graph] rebuilds the graph from the vertex list.
//
// # Binary Format
//
// The binary dump is a single BSON document holding the antennas and
// effects. It carries a format tag but no stability guarantee across
// releases.
//
// # Matrix Format
//
// The matrix has one line per row from 0 to the largest row seen, and one
// space-separated cell per column from 0 to the largest column seen.
// Antennas print as their frequency, effect points as '#' and everything
// else as '.'. Effects with negative coordinates are not shown.
package io
