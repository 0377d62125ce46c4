package parsing

import (
	"reflect"
	"slices"
	"testing"
)

type textAttribute struct {
	Name     string
	Value    string
	HasValue bool
}

func collectAttributes(text string) []textAttribute {
	var attrs []textAttribute
	for attr := range Attributes(text) {
		attrs = append(attrs, textAttribute{
			Name:     attr.Name.Of(text),
			Value:    attr.Value.Of(text),
			HasValue: attr.HasValue,
		})
	}
	return attrs
}

func TestAttributes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []textAttribute
	}{
		{
			name: "Empty text",
			text: "",
			want: []textAttribute{{}},
		},
		{
			name: "Name and value",
			text: "foo=bar",
			want: []textAttribute{{"foo", "bar", true}},
		},
		{
			name: "No equals",
			text: "foo",
			want: []textAttribute{{"foo", "", false}},
		},
		{
			name: "Whitespace trimmed",
			text: " foo = bar ;  Path = / ",
			want: []textAttribute{{"foo", "bar", true}, {"Path", "/", true}},
		},
		{
			name: "Split on first equals",
			text: "auth=abc=123",
			want: []textAttribute{{"auth", "abc=123", true}},
		},
		{
			name: "Flags without value",
			text: "a=b; Secure; HttpOnly",
			want: []textAttribute{{"a", "b", true}, {"Secure", "", false}, {"HttpOnly", "", false}},
		},
		{
			name: "Empty value",
			text: "a=b; Path=",
			want: []textAttribute{{"a", "b", true}, {"Path", "", true}},
		},
		{
			name: "Trailing semicolon",
			text: "a=b;",
			want: []textAttribute{{"a", "b", true}, {}},
		},
		{
			name: "Date with comma",
			text: "a=b; Expires=Tue, 21 May 2019 21:12:11 GMT",
			want: []textAttribute{{"a", "b", true}, {"Expires", "Tue, 21 May 2019 21:12:11 GMT", true}},
		},
		{
			name: "Unicode whitespace trimmed",
			text: "\u00a0a=b\u2003",
			want: []textAttribute{{"a", "b", true}},
		},
	}

	for _, data := range tests {
		t.Run(data.name, func(t *testing.T) {
			if got := collectAttributes(data.text); !reflect.DeepEqual(got, data.want) {
				t.Errorf("Attributes() = %+v, want %+v", got, data.want)
			}
		})
	}
}

func TestAttributes_OffsetsPointIntoText(t *testing.T) {
	text := "foo=bar; Domain=.hyper.example"
	var spans []Span
	for attr := range Attributes(text) {
		spans = append(spans, attr.Name, attr.Value)
	}

	want := []Span{{0, 3}, {4, 7}, {9, 15}, {16, 30}}
	if !slices.Equal(spans, want) {
		t.Errorf("spans = %v, want %v", spans, want)
	}
}

func TestAttributes_StopsEarly(t *testing.T) {
	count := 0
	for range Attributes("a=b; c; d; e") {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}
