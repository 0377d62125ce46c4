package cookies

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func mustBuild(t *testing.T, b Builder) Cookie {
	t.Helper()
	c, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return c
}

func mustParse(t *testing.T, src string) Cookie {
	t.Helper()
	c, err := testParser().Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", src, err)
	}
	return c
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		cookie func(t *testing.T) Cookie
		now    time.Time
		want   string
	}{
		{
			name: "Name and value only",
			cookie: func(t *testing.T) Cookie {
				return mustBuild(t, NewBuilder("foo", "bar"))
			},
			want: "foo=bar",
		},
		{
			name: "Most attributes round-trip",
			cookie: func(t *testing.T) Cookie {
				return mustParse(t, "foo=bar; Path=/index.html; Domain=hyper.example; HttpOnly; Secure; SameSite=Strict")
			},
			want: "foo=bar; Path=/index.html; Domain=hyper.example; HttpOnly; Secure; SameSite=Strict",
		},
		{
			name: "Canonical order and casing",
			cookie: func(t *testing.T) Cookie {
				return mustParse(t, "foo=bar; secure; samesite=lax; httponly; domain=.hyper.example; path=/")
			},
			want: "foo=bar; Path=/; Domain=hyper.example; HttpOnly; Secure; SameSite=Lax",
		},
		{
			name: "Built in canonical order",
			cookie: func(t *testing.T) Cookie {
				return mustBuild(t, NewBuilder("hello", "mynameiswat").Domain("hyper.example").Path("/"))
			},
			want: "hello=mynameiswat; Path=/; Domain=hyper.example",
		},
		{
			name: "Max-Age with Expires",
			cookie: func(t *testing.T) Cookie {
				return mustBuild(t, NewBuilder("foo", "bar").MaxAge(100*time.Second))
			},
			now:  testNow,
			want: "foo=bar; Max-Age=100; Expires=Tue, 21 May 2019 20:13:51 GMT",
		},
		{
			name: "Zero Max-Age",
			cookie: func(t *testing.T) Cookie {
				return mustParse(t, "foo=bar; Max-Age=-1")
			},
			now:  testNow,
			want: "foo=bar; Max-Age=0; Expires=Tue, 21 May 2019 20:12:11 GMT",
		},
		{
			name: "Sub-second Max-Age truncated",
			cookie: func(t *testing.T) Cookie {
				return mustBuild(t, NewBuilder("foo", "bar").MaxAge(1500*time.Millisecond))
			},
			now:  testNow,
			want: "foo=bar; Max-Age=1; Expires=Tue, 21 May 2019 20:12:12 GMT",
		},
		{
			name: "Expires rendered in GMT",
			cookie: func(t *testing.T) Cookie {
				return mustBuild(t, NewBuilder("foo", "bar").MaxAge(time.Hour))
			},
			now:  time.Date(2019, time.May, 21, 23, 12, 11, 0, time.FixedZone("MSK", 3*60*60)),
			want: "foo=bar; Max-Age=3600; Expires=Tue, 21 May 2019 21:12:11 GMT",
		},
		{
			name: "Expires saturates",
			cookie: func(t *testing.T) Cookie {
				return mustParse(t, "foo=bar; Max-Age=99999999999")
			},
			now:  time.Date(9999, time.December, 1, 0, 0, 0, 0, time.UTC),
			want: "foo=bar; Max-Age=9223372036; Expires=Fri, 31 Dec 9999 23:59:59 GMT",
		},
		{
			name: "Everything",
			cookie: func(t *testing.T) Cookie {
				return mustBuild(t, NewBuilder("user", "abcd1234").
					SameSite(SameSiteLax).
					Secure(true).
					HttpOnly(true).
					MaxAge(time.Hour).
					Domain("example.com").
					Path("/home"))
			},
			now:  testNow,
			want: "user=abcd1234; Path=/home; Domain=example.com; Max-Age=3600; Expires=Tue, 21 May 2019 21:12:11 GMT; HttpOnly; Secure; SameSite=Lax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.cookie(t), tt.now); got != tt.want {
				t.Errorf("Format() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppendFormat(t *testing.T) {
	c := mustBuild(t, NewBuilder("foo", "bar").Secure(true))

	got := AppendFormat([]byte("Set-Cookie: "), c, testNow)
	if want := "Set-Cookie: foo=bar; Secure"; string(got) != want {
		t.Errorf("AppendFormat() = %v, want %v", string(got), want)
	}
}

func TestDisplay(t *testing.T) {
	c := mustBuild(t, NewBuilder("foo", "bar").MaxAge(100*time.Second))

	tests := []struct {
		name string
		got  string
	}{
		{"Display", Display(c)},
		{"String", c.String()},
		{"Sprint", fmt.Sprint(c)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if prefix := "foo=bar; Max-Age=100; Expires="; !strings.HasPrefix(tt.got, prefix) {
				t.Errorf("%s = %q, want prefix %q", tt.name, tt.got, prefix)
			}
			if !strings.HasSuffix(tt.got, " GMT") {
				t.Errorf("%s = %q, want GMT date", tt.name, tt.got)
			}
		})
	}
}

func TestDebug(t *testing.T) {
	tests := []struct {
		name   string
		cookie func(t *testing.T) Cookie
		want   string
	}{
		{
			name: "Pair",
			cookie: func(t *testing.T) Cookie {
				return mustBuild(t, NewBuilder("foo", "bar"))
			},
			want: `Cookie{name: "foo", value: "bar"}`,
		},
		{
			name: "Parsed",
			cookie: func(t *testing.T) Cookie {
				return mustParse(t, "foo=bar; SameSite=Strict; Secure; HttpOnly; Max-Age=3; Domain=x.example; Path=/")
			},
			want: `Cookie{name: "foo", value: "bar", path: "/", domain: "x.example", max_age: 3s, http_only: true, secure: true, same_site: Strict}`,
		},
		{
			name: "Built",
			cookie: func(t *testing.T) Cookie {
				return mustBuild(t, NewBuilder("foo", "").Path("/a").Secure(true))
			},
			want: `Cookie{name: "foo", value: "", path: "/a", secure: true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.cookie(t)
			if got := Debug(c); got != tt.want {
				t.Errorf("Debug() = %v, want %v", got, tt.want)
			}
			if got := fmt.Sprintf("%#v", c); got != tt.want {
				t.Errorf("%%#v = %v, want %v", got, tt.want)
			}
		})
	}
}
