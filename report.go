package q47verify

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	statusAdmissible = "θ=1/2"
	statusFails      = "FAILS"
)

// RenderCountTable writes the checkpoint table of an effective-moduli
// scan to w.
func RenderCountTable(w io.Writer, r *CountReport) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("N_eff(D) vs D/(log D)^{45/46}")
	t.AppendHeader(table.Row{"D", "N_eff(D)", "D/(log D)^45/46", "Ratio", "Fraction"})
	t.SetColumnConfigs(numericColumns(5))
	for _, s := range r.Samples {
		t.AppendRow(table.Row{
			s.D,
			s.NEff,
			fmt.Sprintf("%.2f", s.Predicted),
			fmt.Sprintf("%.4f", s.Ratio),
			fmt.Sprintf("%.4f%%", s.Fraction),
		})
	}
	t.Render()
}

// RenderLocalRootTable writes the trichotomy verification table to w.
// Inert primes all agree trivially and would swamp the table, so only
// non-inert and mismatching primes get a row; the tallies cover the rest.
func RenderLocalRootTable(w io.Writer, r *LocalRootReport) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("ω(p) trichotomy, p ≤ %d", r.Config.PMax))
	t.AppendHeader(table.Row{"p", "type", "theory", "brute", "match"})
	t.SetColumnConfigs(numericColumns(5))
	for _, rec := range r.Records {
		if rec.Class == Inert && rec.Match {
			continue
		}
		t.AppendRow(table.Row{rec.P, rec.Class.String(), rec.Theory, rec.Brute, rec.Match})
	}
	t.AppendFooter(table.Row{"inert", r.Inert, "splitting", r.Split, fmt.Sprintf("ramified %d", r.Ramified)})
	t.Render()
}

// RenderSparsityTable writes the exponent comparison table to w.
func RenderSparsityTable(w io.Writer, r *SparsityReport) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Cauchy–Schwarz exponents: global vs restricted")
	t.AppendHeader(table.Row{"B", "Global", "Status", "Restricted", "Status"})
	t.SetColumnConfigs(numericColumns(5))
	for _, row := range r.Rows {
		t.AppendRow(table.Row{
			row.Label,
			fmt.Sprintf("%+.6f", row.Global),
			admissibleStatus(row.GlobalOK),
			fmt.Sprintf("%+.6f", row.Restricted),
			admissibleStatus(row.RestrictedOK),
		})
	}
	t.Render()
}

func admissibleStatus(ok bool) string {
	if ok {
		return statusAdmissible
	}
	return statusFails
}

func numericColumns(n int) []table.ColumnConfig {
	cfgs := make([]table.ColumnConfig, n)
	for i := range cfgs {
		cfgs[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignRight}
	}
	return cfgs
}

// WriteCountCSV writes the checkpoint samples in the schema of the
// checked-in effective_moduli_count.csv, including its comment row, so
// the output is diffable against the published data.
func WriteCountCSV(w io.Writer, r *CountReport) error {
	cw := csv.NewWriter(w)
	records := [][]string{
		{"# N_eff(D) = #{q ≤ D : q ∈ Q_eff}"},
		{"D", "N_eff", "Asymptotic_D_over_logD_45_46", "Ratio", "Fraction_percent"},
	}
	for _, s := range r.Samples {
		records = append(records, []string{
			strconv.Itoa(s.D),
			strconv.Itoa(s.NEff),
			fmt.Sprintf("%.2f", s.Predicted),
			fmt.Sprintf("%.4f", s.Ratio),
			fmt.Sprintf("%.4f", s.Fraction),
		})
	}
	return writeAll(cw, records)
}

// WriteLocalRootCSV writes the trichotomy records in the schema of
// local_root_structure.csv. As in the published file, inert primes are
// recorded only up to 53; all splitting and ramified primes appear.
func WriteLocalRootCSV(w io.Writer, r *LocalRootReport) error {
	cw := csv.NewWriter(w)
	records := [][]string{
		{"# omega(p) for Q(n) = n^47 - (n-1)^47"},
		{"Prime_p", "Type", "omega_theory", "omega_brute", "Match"},
	}
	for _, rec := range r.Records {
		if rec.Class == Inert && rec.P > 53 {
			continue
		}
		records = append(records, []string{
			strconv.Itoa(rec.P),
			rec.Class.String(),
			strconv.Itoa(rec.Theory),
			strconv.Itoa(rec.Brute),
			strconv.FormatBool(rec.Match),
		})
	}
	return writeAll(cw, records)
}

// WriteSparsityCSV writes the exponent table in the schema of
// cauchy_schwarz_comparison.csv.
func WriteSparsityCSV(w io.Writer, r *SparsityReport) error {
	cw := csv.NewWriter(w)
	records := [][]string{
		{"# Cauchy-Schwarz exponent comparison"},
		{"# Global (Prop 5.2): (46B-45)/92"},
		{"# Restricted (Thm 5.5): (23B'-45)/46"},
		{"B", "Global_Exponent", "Global_Status", "Restricted_Exponent", "Restricted_Status"},
	}
	for _, row := range r.Rows {
		records = append(records, []string{
			row.Label,
			fmt.Sprintf("%+.6f", row.Global),
			admissibleStatus(row.GlobalOK),
			fmt.Sprintf("%+.6f", row.Restricted),
			admissibleStatus(row.RestrictedOK),
		})
	}
	return writeAll(cw, records)
}

func writeAll(cw *csv.Writer, records [][]string) error {
	for _, rec := range records {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCountCSV writes the scan CSV to path, creating parent directories.
func SaveCountCSV(path string, r *CountReport) error {
	return saveCSV(path, func(w io.Writer) error { return WriteCountCSV(w, r) })
}

// SaveLocalRootCSV writes the trichotomy CSV to path.
func SaveLocalRootCSV(path string, r *LocalRootReport) error {
	return saveCSV(path, func(w io.Writer) error { return WriteLocalRootCSV(w, r) })
}

// SaveSparsityCSV writes the exponent comparison CSV to path.
func SaveSparsityCSV(path string, r *SparsityReport) error {
	return saveCSV(path, func(w io.Writer) error { return WriteSparsityCSV(w, r) })
}

func saveCSV(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
