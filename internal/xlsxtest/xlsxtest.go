// Package xlsxtest builds small .xlsx packages for tests.
package xlsxtest

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Cell is a cell of a generated worksheet. Strings go to the shared
// string table, numbers are written inline.
type Cell struct {
	Ref string
	Str string
	Num string
}

// Sheet is a generated worksheet.
type Sheet struct {
	Name  string
	Cells []Cell
}

const (
	nsMain = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	nsRel  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPkg  = "http://schemas.openxmlformats.org/package/2006/relationships"
)

// Build writes a minimal .xlsx package. activeTab < 0 omits the
// workbook view.
func Build(t testing.TB, activeTab int, sheets ...Sheet) []byte {
	t.Helper()
	var strs []string
	index := map[string]int{}
	for _, s := range sheets {
		for _, c := range s.Cells {
			if c.Num == "" {
				if _, ok := index[c.Str]; !ok {
					index[c.Str] = len(strs)
					strs = append(strs, c.Str)
				}
			}
		}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	add := func(name, body string) {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" + body))
		require.NoError(t, err)
	}

	var ct strings.Builder
	ct.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	ct.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	ct.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	ct.WriteString(`<Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>`)
	ct.WriteString(`<Override PartName="/xl/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"/>`)
	ct.WriteString(`<Override PartName="/xl/sharedStrings.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sharedStrings+xml"/>`)
	for i := range sheets {
		fmt.Fprintf(&ct, `<Override PartName="/xl/worksheets/sheet%d.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>`, i+1)
	}
	ct.WriteString(`</Types>`)
	add("[Content_Types].xml", ct.String())

	add("_rels/.rels", `<Relationships xmlns="`+nsPkg+`">`+
		`<Relationship Id="rId1" Type="`+nsRel+`/officeDocument" Target="xl/workbook.xml"/>`+
		`</Relationships>`)

	var wb, rels strings.Builder
	wb.WriteString(`<workbook xmlns="` + nsMain + `" xmlns:r="` + nsRel + `">`)
	if activeTab >= 0 {
		fmt.Fprintf(&wb, `<bookViews><workbookView activeTab="%d"/></bookViews>`, activeTab)
	}
	wb.WriteString(`<sheets>`)
	rels.WriteString(`<Relationships xmlns="` + nsPkg + `">`)
	for i, s := range sheets {
		fmt.Fprintf(&wb, `<sheet name="%s" sheetId="%d" r:id="rId%d"/>`, s.Name, i+1, i+1)
		fmt.Fprintf(&rels, `<Relationship Id="rId%d" Type="%s/worksheet" Target="worksheets/sheet%d.xml"/>`, i+1, nsRel, i+1)
	}
	wb.WriteString(`</sheets></workbook>`)
	n := len(sheets)
	fmt.Fprintf(&rels, `<Relationship Id="rId%d" Type="%s/styles" Target="styles.xml"/>`, n+1, nsRel)
	fmt.Fprintf(&rels, `<Relationship Id="rId%d" Type="%s/sharedStrings" Target="sharedStrings.xml"/>`, n+2, nsRel)
	rels.WriteString(`</Relationships>`)
	add("xl/workbook.xml", wb.String())
	add("xl/_rels/workbook.xml.rels", rels.String())

	add("xl/styles.xml", `<styleSheet xmlns="`+nsMain+`">`+
		`<fonts count="1"><font><sz val="11"/><name val="Calibri"/></font></fonts>`+
		`<fills count="2"><fill><patternFill patternType="none"/></fill><fill><patternFill patternType="gray125"/></fill></fills>`+
		`<borders count="1"><border><left/><right/><top/><bottom/><diagonal/></border></borders>`+
		`<cellStyleXfs count="1"><xf numFmtId="0" fontId="0" fillId="0" borderId="0"/></cellStyleXfs>`+
		`<cellXfs count="1"><xf numFmtId="0" fontId="0" fillId="0" borderId="0" xfId="0"/></cellXfs>`+
		`</styleSheet>`)

	var sst strings.Builder
	fmt.Fprintf(&sst, `<sst xmlns="%s" count="%d" uniqueCount="%d">`, nsMain, len(strs), len(strs))
	for _, s := range strs {
		fmt.Fprintf(&sst, `<si><t>%s</t></si>`, s)
	}
	sst.WriteString(`</sst>`)
	add("xl/sharedStrings.xml", sst.String())

	for i, s := range sheets {
		add(fmt.Sprintf("xl/worksheets/sheet%d.xml", i+1), sheetXML(s, index))
	}

	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func sheetXML(s Sheet, index map[string]int) string {
	var sb strings.Builder
	sb.WriteString(`<worksheet xmlns="` + nsMain + `"><sheetData>`)
	row := ""
	for _, c := range s.Cells {
		r := strings.TrimLeft(c.Ref, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
		if r != row {
			if row != "" {
				sb.WriteString(`</row>`)
			}
			fmt.Fprintf(&sb, `<row r="%s">`, r)
			row = r
		}
		if c.Num != "" {
			fmt.Fprintf(&sb, `<c r="%s"><v>%s</v></c>`, c.Ref, c.Num)
		} else {
			fmt.Fprintf(&sb, `<c r="%s" t="s"><v>%d</v></c>`, c.Ref, index[c.Str])
		}
	}
	if row != "" {
		sb.WriteString(`</row>`)
	}
	sb.WriteString(`</sheetData></worksheet>`)
	return sb.String()
}

