// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package xmltree

import "testing"

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<response>
	<header>
		<resultCode>000</resultCode>
		<resultMsg>OK</resultMsg>
	</header>
	<body>
		<items>
			<item><aptNm>한강아파트</aptNm><floor>7</floor></item>
			<item><aptNm>공덕타워</aptNm><floor> 12 </floor></item>
		</items>
		<totalCount>2</totalCount>
	</body>
</response>`

func TestParse(t *testing.T) {
	t.Run("finds_nested_text", func(t *testing.T) {
		root, err := Parse(sampleXML)
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if got := root.FindText("resultCode"); got != "000" {
			t.Errorf("resultCode = %q, want %q", got, "000")
		}
		if got := root.FindText("totalCount"); got != "2" {
			t.Errorf("totalCount = %q, want %q", got, "2")
		}
	})

	t.Run("missing_tag_yields_empty", func(t *testing.T) {
		root, err := Parse(sampleXML)
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if got := root.FindText("nonexistent"); got != "" {
			t.Errorf("missing tag = %q, want empty", got)
		}
	})

	t.Run("find_all_items", func(t *testing.T) {
		root, err := Parse(sampleXML)
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		items := root.FindAll("item")
		if len(items) != 2 {
			t.Fatalf("len(items) = %d, want 2", len(items))
		}
		if got := items[0].FindText("aptNm"); got != "한강아파트" {
			t.Errorf("first aptNm = %q", got)
		}
	})

	t.Run("text_is_trimmed", func(t *testing.T) {
		root, err := Parse(sampleXML)
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		items := root.FindAll("item")
		if got := items[1].FindText("floor"); got != "12" {
			t.Errorf("floor = %q, want %q", got, "12")
		}
	})

	t.Run("malformed_xml_errors", func(t *testing.T) {
		if _, err := Parse("<response><unclosed>"); err == nil {
			t.Error("expected error for unclosed element")
		}
		if _, err := Parse("not xml at all"); err == nil {
			t.Error("expected error for non-XML input")
		}
		if _, err := Parse(""); err == nil {
			t.Error("expected error for empty input")
		}
	})

	t.Run("junk_after_root_errors", func(t *testing.T) {
		if _, err := Parse("<response></response><junk"); err == nil {
			t.Error("expected error for trailing junk after the root element")
		}
	})

	t.Run("bad_entity_after_root_errors", func(t *testing.T) {
		if _, err := Parse("<response></response>&bad;"); err == nil {
			t.Error("expected error for an invalid entity after the root element")
		}
	})

	t.Run("trailing_whitespace_is_fine", func(t *testing.T) {
		if _, err := Parse("<response></response>\n  "); err != nil {
			t.Errorf("parse failed: %v", err)
		}
	})
}
