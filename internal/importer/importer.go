// Package importer reads candidate member records out of a spreadsheet.
// It carries the heuristics the membership lists need: section-header
// rows switch between the Member and Non-Member blocks, junk rows are
// filtered, existing codes are preserved, and names are normalized to
// the canonical "Last, First" form.
package importer

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/semaphore"

	"offertory/internal/core"
)

var nameHeaders = []string{"name", "member name", "full name"}
var codeHeaders = []string{"code", "member code"}

var nonDigits = regexp.MustCompile(`\D`)

// Importer parses workbooks. Only one import may be in flight at a time;
// a second request is rejected with core.ErrImportInFlight rather than
// queued.
type Importer struct {
	inflight *semaphore.Weighted
}

func New() *Importer {
	return &Importer{inflight: semaphore.NewWeighted(1)}
}

// FromFile imports members from a workbook on disk.
func (im *Importer) FromFile(path string) ([]core.Member, error) {
	if !im.inflight.TryAcquire(1) {
		return nil, core.ErrImportInFlight
	}
	defer im.inflight.Release(1)

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("import failed: %w", err)
	}
	defer f.Close()
	return parseWorkbook(f)
}

// FromReader imports members from workbook bytes.
func (im *Importer) FromReader(r io.Reader) ([]core.Member, error) {
	if !im.inflight.TryAcquire(1) {
		return nil, core.ErrImportInFlight
	}
	defer im.inflight.Release(1)

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("import failed: %w", err)
	}
	defer f.Close()
	return parseWorkbook(f)
}

func parseWorkbook(f *excelize.File) ([]core.Member, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("import failed: workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("import failed: %w", err)
	}
	if len(rows) == 0 {
		return []core.Member{}, nil
	}

	nameCol, codeCol := findColumns(rows[0])

	currentType := core.MemberTypeMember
	counter := 1
	members := []core.Member{}

	for _, row := range rows[1:] {
		rawName := strings.TrimSpace(cell(row, nameCol))
		if rawName == "" {
			continue
		}
		lower := strings.ToLower(rawName)

		// a "Non Member" header row switches the running block
		if strings.Contains(lower, "non member") || strings.Contains(lower, "non-member") {
			currentType = core.MemberTypeNonMember
			continue
		}
		if strings.Contains(lower, "adjustment") || strings.Contains(lower, "noname") {
			continue
		}

		prefix := currentType.Prefix()

		// keep an existing code's number when it has one; otherwise the
		// running counter advances
		var number int
		if existing := strings.TrimSpace(cell(row, codeCol)); existing != "" {
			n, err := strconv.Atoi(nonDigits.ReplaceAllString(existing, ""))
			if err != nil {
				number = counter
			} else {
				number = n
			}
		} else {
			number = counter
			counter++
		}

		members = append(members, core.Member{
			ID:   uuid.NewString(),
			Name: normalizeName(rawName),
			Code: fmt.Sprintf("%s%04d", prefix, number),
			Type: currentType,
		})
	}

	slog.Info("Workbook parsed", "sheet", sheets[0], "members", len(members))
	return members, nil
}

// normalizeName converts "First M. Last" to "Last, First M.". Names that
// already contain a comma are taken as-is.
func normalizeName(raw string) string {
	if strings.Contains(raw, ",") {
		return raw
	}
	parts := strings.Fields(raw)
	if len(parts) < 2 {
		return raw
	}
	last := parts[len(parts)-1]
	first := strings.Join(parts[:len(parts)-1], " ")
	return last + ", " + first
}

func findColumns(header []string) (nameCol, codeCol int) {
	nameCol, codeCol = 0, -1
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, want := range nameHeaders {
			if h == want {
				nameCol = i
			}
		}
		for _, want := range codeHeaders {
			if h == want {
				codeCol = i
			}
		}
	}
	return nameCol, codeCol
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
