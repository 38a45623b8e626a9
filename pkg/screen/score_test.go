// Copyright (c) 2026 VinaScreen Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package screen

import "testing"

// vinaOutput is a trimmed engine console dump with a ranked mode table.
const vinaOutput = `Detected 8 CPUs
Reading input ... done.
Setting up the scoring function ... done.
Analyzing the binding site ... done.
Using random seed: 1851856171
Performing search ... done.
Refining results ... done.

mode |   affinity | dist from best mode
     | (kcal/mol) | rmsd l.b.| rmsd u.b.
-----+------------+----------+----------
   1         -7.2      0.000      0.000
   2         -6.9      1.512      2.223
   3         -6.5      2.118      3.904
Writing output ... done.
`

func TestExtractBestAffinity(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   float64
		wantOK bool
	}{
		{
			name:   "full engine output",
			output: vinaOutput,
			want:   -7.2,
			wantOK: true,
		},
		{
			name:   "bare best mode line",
			output: "1 -7.2 0.000 0.000",
			want:   -7.2,
			wantOK: true,
		},
		{
			name:   "leading whitespace",
			output: "   1         -9.134      0.000      0.000\n",
			want:   -9.134,
			wantOK: true,
		},
		{
			name:   "positive affinity",
			output: "   1          2.5      0.000      0.000\n",
			want:   2.5,
			wantOK: true,
		},
		{
			name:   "no mode table",
			output: "Reading input ... failed.\n",
			wantOK: false,
		},
		{
			name:   "empty output",
			output: "",
			wantOK: false,
		},
		{
			name:   "mode 10 does not match mode 1",
			output: "  10         -8.0      0.000      0.000\n",
			wantOK: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractBestAffinity(tc.output)
			if ok != tc.wantOK {
				t.Fatalf("ExtractBestAffinity ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("ExtractBestAffinity = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestExtractBestAffinity_FirstMatchWins(t *testing.T) {
	// Two mode tables in one capture: the first best-mode line is the
	// ranked result; the second must be ignored.
	output := "   1         -5.1      0.000      0.000\n" +
		"   1         -9.9      0.000      0.000\n"
	got, ok := ExtractBestAffinity(output)
	if !ok {
		t.Fatal("ExtractBestAffinity ok = false, want true")
	}
	if got != -5.1 {
		t.Errorf("ExtractBestAffinity = %v, want -5.1", got)
	}
}
