package urlregex

import (
	"errors"
	"sync"
	"testing"

	"github.com/coregx/coregex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPattern(t *testing.T) {
	tests := []struct {
		name     string
		urls     []string
		rejected []string
		expected string
		// partial marks samples whose query tokens fall outside the
		// key=value grammar, so the pattern need not match them.
		partial bool
	}{
		{
			name: "start end",
			urls: []string{
				"http://www.domain.com/forums/",
				"https://www.domain.com/forums/",
			},
			expected: `^https?://www\.domain\.com/forums/$`,
		},
		{
			name: "start end 2",
			urls: []string{
				"http://www.domain.com/forums/",
				"http://www.domain.com/forums/",
			},
			rejected: []string{
				"https://www.domain.co.uk/forums",
			},
			expected: `^http://www\.domain\.com/forums/$`,
		},
		{
			name: "start end 3",
			urls: []string{
				"https://www.domain.com/forums/",
				"https://www.domain.com/forums/",
			},
			rejected: []string{
				"http://www.domain.co.uk/forums",
			},
			expected: `^https://www\.domain\.com/forums/$`,
		},
		{
			name: "last element",
			urls: []string{
				"http://www.domain.com/forums/viewforum_31.htm",
				"http://www.domain.com/forums/viewforum_32.htm",
				"http://www.domain.com/forums/viewforum_25.htm",
			},
			expected: `^http://www\.domain\.com/forums/viewforum_\d+\.htm$`,
		},
		{
			name: "last element 2",
			urls: []string{
				"http://www.domain.com/forums/viewforum_10-1.htm",
				"http://www.domain.com/forums/viewforum_10-10.htm",
				"http://www.domain.com/forums/viewforum_10-100.htm",
				"http://www.domain.com/forums/viewforum_10-101.htm",
				"http://www.domain.com/forums/viewforum_4767.htm",
				"http://www.domain.com/forums/viewtopic_49097-1.htm",
				"http://www.domain.com/forums/viewforum_49702-77.htm",
				"http://www.domain.com/forums/viewtopic_50051-2.htm",
			},
			expected: `^http://www\.domain\.com/forums/view[^?]+\.htm$`,
		},
		{
			name: "last element 3",
			urls: []string{
				"http://www.domain.co.uk/test/forum/what-gives-away-your-travel-obsession_4732",
				"http://www.domain.co.uk/test/forum",
				"http://www.domain.co.uk/test/forum/san-jose-costa-rica-city-tours_4731",
				"http://www.domain.co.uk/test/forum/five-highlights-from-your--2014-travels_4730",
			},
			rejected: []string{
				"http://www.domain.co.uk/test/forum/what-gives-away-your-travel-obsession_4732?query=x",
			},
			expected: `^http://www\.domain\.co\.uk/test/forum/?([^?]+_\d+)?$`,
		},
		{
			name: "last element 4",
			urls: []string{
				"http://www.domain.com/campaign/286",
				"http://www.domain.com/products/computers-printers-scanners",
				"http://www.domain.com/offers/best-discounts",
			},
			expected: `^http://www\.domain\.com/[^/]+/[^?]+$`,
		},
		{
			name: "last element 5",
			urls: []string{
				"http://www.domain.fr/visage/exfoliant.aspx",
				"http://www.domain.fr/visage/toniques.aspx",
				"http://www.domain.fr/search.aspx#?fh_location=categories%3C%7Buniversefr_frc_makeup%7D%2Ffacet_product_type_fr%3E%7Bfr_fr_product_type_foundation%7D",
			},
			expected: `^http://www\.domain\.fr/[^/]+/?([^?]+\.aspx)?\??([&;]?fh_location=[^&;]+)*$`,
		},
		{
			name: "last element 6",
			urls: []string{
				"http://a/b/list",
				"http://a/b/c/d/list",
			},
			rejected: []string{
				"http://a/b//list",
			},
			expected: `^http://a/b/(c/d/)?list$`,
		},
		{
			name: "last element 7",
			urls: []string{
				"http://www.domain.co.uk/test/forum/what-gives-away-your-travel-obsession_4732",
				"http://www.domain.co.uk/test/forum/",
				"http://www.domain.co.uk/test/forum/san-jose-costa-rica-city-tours_4731",
				"http://www.domain.co.uk/test/forum/five-highlights-from-your--2014-travels_4730",
			},
			expected: `^http://www\.domain\.co\.uk/test/forum/([^?]+_\d+)?$`,
		},
		{
			name: "last element 8",
			urls: []string{
				"http://www.domain.com/forums/viewforum_10-1.htm",
				"http://www.domain.com/forums/viewforum_10-10.htm",
				"http://www.domain.com/forums/viewforum_10-100.htm",
				"http://www.domain.com/forums/viewforum_10-101.htm",
				"http://www.domain.com/forums/viewforum_4767.htm",
				"http://www.domain.com/forums/viewforum_1.htm",
				"http://www.domain.com/forums/viewforum_49702-77.htm",
			},
			expected: `^http://www\.domain\.com/forums/viewforum_[^?]+\.htm$`,
		},
		{
			name: "last element 9",
			urls: []string{
				"http://www.domain.com/forums/viewforum_10-1.htm",
				"http://www.domain.com/forums/viewforum_10-10.htm",
				"http://www.domain.com/forums/viewforum_10-100.htm",
				"http://www.domain.com/forums/viewforum_10-101.htm",
				"http://www.domain.com/forums/viewforum_49702-77.htm",
			},
			expected: `^http://www\.domain\.com/forums/viewforum_\d+\-\d+\.htm$`,
		},
		{
			name: "not required element",
			urls: []string{
				"http://www.letempledelaforme.com/forums/",
				"http://www.letempledelaforme.com/forums/16/forum-musculation/view/page/3",
				"http://www.letempledelaforme.com/forums/22/forum-cardio/view/page/6",
				"http://www.letempledelaforme.com/forums/34/test-cardio/view/page/23",
			},
			expected: `^http://www\.letempledelaforme\.com/forums/(\d+/[^/]+/view/page/\d+)?$`,
		},
		{
			name: "not required element 2",
			urls: []string{
				"http://www.domain.com/forums",
				"http://www.domain.com/forums/",
				"http://www.domain.com/forums/viewforum_31.htm",
				"http://www.domain.com/forums/viewforum_32.htm",
				"http://www.domain.com/forums/viewforum_25.htm",
			},
			expected: `^http://www\.domain\.com/forums/?(viewforum_\d+\.htm)?$`,
		},
		{
			name: "last slash",
			urls: []string{
				"http://forum.cultureco.com/informatique-assistance-et",
				"http://forum.cultureco.com/informatique-assistance-et-conseils/",
				"http://forum.cultureco.com/bli/",
			},
			expected: `^http://forum\.cultureco\.com/[^?]+/?$`,
		},
		{
			name: "different domain",
			urls: []string{
				"http://forum.domain.com/forums/viewforum_31.htm",
				"http://forum.domain.com/forums/viewforum_32.htm",
				"http://www.domain.com/forums/viewforum_25.htm",
			},
			rejected: []string{
				"http://forum.domain.com/forums/viewforum_31.htm?query=x",
			},
			expected: `^http://[^/]+\.domain\.com/forums/viewforum_\d+\.htm$`,
		},
		{
			name: "query",
			urls: []string{
				"http://forum.domain.com/forums/viewforum_31.htm?query=value",
				"http://forum.domain.com/forums/viewforum_32.htm?query=value&query2=value2",
				"http://forum.domain.com/forums/viewforum_25.htm?query3=value3",
				"http://forum.domain.com/forums/viewforum_25.htm",
				"http://forum.domain.com/forums/viewforum_25/",
			},
			expected: `^http://forum\.domain\.com/forums/viewforum_\d+[^?]*/?\??([&;]?query=[^&;]+|[&;]?query2=[^&;]+|[&;]?query3=[^&;]+)*$`,
		},
		{
			name: "query 2",
			urls: []string{
				"http://georezo.net/forum/viewforum.php?id=50",
				"http://georezo.net/forum/viewforum.php?id=1&p=2",
			},
			expected: `^http://georezo\.net/forum/viewforum\.php\??([&;]?id=[^&;]+|[&;]?p=[^&;]+)+$`,
		},
		{
			name: "query 3",
			urls: []string{
				"http://forum.domain.com/some-controller/some-action?=baz&foo=bar&edit&spam=eggs=ham&==&",
			},
			expected: `^http://forum\.domain\.com/some\-controller/some\-action\??([&;]?foo=[^&;]+|[&;]?spam=[^&;]+|[^&;=]+)+$`,
			partial:  true,
		},
		{
			name: "query 4",
			urls: []string{
				"http://forum.domain.com/some-controller/some-action?baz",
				"http://forum.domain.com/some-controller/some-action?foo",
				"http://forum.domain.com/some-controller/some-action?edit",
				"http://forum.domain.com/some-controller/some-action?spam",
				"http://forum.domain.com/some-controller/some-action?eggs",
				"http://forum.domain.com/some-controller/some-action?ham",
				"http://forum.domain.com/some-controller/some-action?test=2",
			},
			rejected: []string{
				"http://forum.domain.com/some-controller/some-action?baz&sid=89289829479749449894",
			},
			expected: `^http://forum\.domain\.com/some\-controller/some\-action\??([&;]?test=[^&;]+|[^&;=]+)+$`,
		},
		{
			name: "query 5",
			urls: []string{
				"http://forum.domain.com/some-controller/some-action",
				"http://forum.domain.com/some-controller/some-action?baz",
				"http://forum.domain.com/some-controller/some-action?foo",
				"http://forum.domain.com/some-controller/some-action?edit",
				"http://forum.domain.com/some-controller/some-action?spam",
				"http://forum.domain.com/some-controller/some-action?eggs",
				"http://forum.domain.com/some-controller/some-action?ham",
				"http://forum.domain.com/some-controller/some-action?test=2",
			},
			expected: `^http://forum\.domain\.com/some\-controller/some\-action\??([&;]?test=[^&;]+|[^&;=]+)*$`,
		},
		{
			name: "fragments",
			urls: []string{
				"http://forum.domain.com/forums/viewforum_31.htm?query=value",
				"http://forum.domain.com/forums/viewforum_31.htm#test",
				"http://forum.domain.com/forums/viewforum_25.htm",
				"http://forum.domain.com/forums/viewforum_25/",
			},
			expected: `^http://forum\.domain\.com/forums/viewforum_\d+[^?]*/?\??([&;]?query=[^&;]+)*$`,
		},
		{
			name: "fragments 2",
			urls: []string{
				"http://www.domain.fr/corps-bain/savon.aspx#/savon.aspx",
				"http://www.domain.fr/corps-bain/deodorants.aspx#/deodorants.aspx",
			},
			expected: `^http://www\.domain\.fr/corps\-bain/[^/]+\.aspx#/[^?]+\.aspx$`,
		},
		{
			name: "all together",
			urls: []string{
				"http://www.domain.com/forums",
				"http://www.domain.com/forums/",
				"https://www.domain.com/forums/",
				"http://forum.domain.com/forums/viewforum_31.htm",
				"http://forum.domain.com/test/viewforum_32.htm",
				"http://www.domain.com/forums/viewforum_25.htm",
				"http://forum.domain.com/forums/viewforum_31.htm?query=value",
				"http://forum.domain.com/forums/viewforum_31.htm?query=value&query2=value2",
				"http://forum.domain.com/forums/viewforum_31.htm?query=value;query2=value2",
				"http://forum.domain.com/forums/viewforum_31.htm#test",
			},
			rejected: []string{
				"http://domain.com/forums/other",
				"http://www.domain.uk/forums/other",
				"http://www.domain.com/forums/other",
				"http://www.notdomain.com/forums/",
				"http://www.notdomain.com/more/parts/than/necessary",
				"http://forum.domain.com/",
				"http://forum.domain.com/forums/viewforum_31.htm?query3=value",
				"http://www.domain.com/forums/viewforum.htm",
			},
			expected: `^https?://[^/]+\.domain\.com/[^/]+/?(viewforum_\d+\.htm[^?]*)?\??([&;]?query=[^&;]+|[&;]?query2=[^&;]+)*$`,
		},
		{
			name: "hifen",
			urls: []string{
				"http://www.vectra-gts.com/f17p50-rencontres-de-vectra-signum",
				"http://www.vectra-gts.com/f1p100-presentation-des-membres",
				"http://www.vectra-gts.com/f2p1950-presentation-des-membres",
			},
			expected: `^http://www\.vectra\-gts\.com/f\d+p\d+\-[^?]+$`,
		},
		{
			name: "bad match",
			urls: []string{
				"http://forum.trader-finance.fr/actions-us/index2.html",
				"http://forum.trader-finance.fr/actions-us/index3.html",
				"http://forum.trader-finance.fr/actions-us/index4.html",
				"http://forum.trader-finance.fr/indices-boursier/index2.html",
				"http://forum.trader-finance.fr/indices-boursier/index3.html",
				"http://forum.trader-finance.fr/indices-boursier/index9.html",
			},
			expected: `^http://forum\.trader\-finance\.fr/[^/]+/index\d+\.html$`,
		},
		{
			name: "bad match 2",
			urls: []string{
				"http://www.tomshardware.co.uk/forum/forum-4/page-2.html",
				"http://www.tomshardware.co.uk/forum/forum-4/page-20.html",
				"http://www.tomshardware.co.uk/forum/forum-4/page-3.html",
				"http://www.tomshardware.co.uk/forum/forum-74/page-100.html",
				"http://www.tomshardware.co.uk/forum/forum-74/page-1000.html",
				"http://www.tomshardware.co.uk/forum/forum-74/page-2.html",
				"http://www.tomshardware.co.uk/forum/forum-74/page-200.html",
				"http://www.tomshardware.co.uk/forum/forum-74/page-3.html",
			},
			expected: `^http://www\.tomshardware\.co\.uk/forum/forum\-\d+/page\-\d+\.html$`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern, err := BuildPattern(tt.urls)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, pattern)

			re, err := coregex.Compile(pattern)
			require.NoError(t, err)

			if !tt.partial {
				for _, u := range tt.urls {
					assert.True(t, re.MatchString(u), "pattern %s should match %s", pattern, u)
				}
			}
			for _, u := range tt.rejected {
				assert.False(t, re.MatchString(u), "pattern %s should not match %s", pattern, u)
			}
		})
	}
}

func TestBuildPattern_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		urls     []string
		expected string
	}{
		{
			name:     "numeric run in last segment",
			urls:     []string{"http://a.com/forums/viewforum_31.htm", "http://a.com/forums/viewforum_25.htm"},
			expected: `^http://a\.com/forums/viewforum_\d+\.htm$`,
		},
		{
			name:     "optional trailing segment",
			urls:     []string{"http://a.com/test/forum", "http://a.com/test/forum/x_1"},
			expected: `^http://a\.com/test/forum/?(x_1)?$`,
		},
		{
			name:     "every url queried",
			urls:     []string{"http://a.com/p?foo=1", "http://a.com/p?bar=2&foo=3"},
			expected: `^http://a\.com/p\??([&;]?foo=[^&;]+|[&;]?bar=[^&;]+)+$`,
		},
		{
			name:     "optional middle segments",
			urls:     []string{"http://a/b/list", "http://a/b/c/d/list"},
			expected: `^http://a/b/(c/d/)?list$`,
		},
		{
			name:     "no scheme",
			urls:     []string{"a.com/x/1", "a.com/x/2"},
			expected: `a\.com/x/\d+$`,
		},
		{
			name:     "empty trailing path",
			urls:     []string{"http://h/1", "http://h/"},
			expected: `^http://h/(1)?$`,
		},
		{
			name:     "single host",
			urls:     []string{"http://h"},
			expected: `^http://h$`,
		},
		{
			name:     "mixed schemes and trailing slash",
			urls:     []string{"http://www.a.com/forums", "https://www.a.com/forums/"},
			expected: `^https?://www\.a\.com/forums/?$`,
		},
		{
			name:     "key seen with and without value",
			urls:     []string{"http://h/p?a=1", "http://h/p?a"},
			expected: `^http://h/p\??([&;]?a=[^&;]+)+$`,
		},
		{
			name:     "uppercase scheme",
			urls:     []string{"HTTPS://h/p"},
			expected: `^https://h/p$`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern, err := BuildPattern(tt.urls)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, pattern)
		})
	}
}

func TestBuildPattern_Empty(t *testing.T) {
	_, err := BuildPattern(nil)
	require.Error(t, err)

	var insufficient *InsufficientDataError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 0, insufficient.Count)
}

func TestBuildPattern_Deterministic(t *testing.T) {
	urls := []string{
		"http://forum.domain.com/forums/viewforum_31.htm?query=value",
		"http://forum.domain.com/forums/viewforum_32.htm?query=value&query2=value2",
		"http://www.domain.com/forums/",
	}

	first, err := BuildPattern(urls)
	require.NoError(t, err)
	for range 5 {
		again, err := BuildPattern(urls)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestBuildPattern_Duplicates(t *testing.T) {
	once, err := BuildPattern([]string{"http://a.com/x/1", "http://a.com/y/2"})
	require.NoError(t, err)

	repeated, err := BuildPattern([]string{
		"http://a.com/x/1",
		"http://a.com/x/1",
		"https://a.com/x/1",
		"http://a.com/y/2",
	})
	require.NoError(t, err)

	// The https sample only widens the scheme.
	assert.Equal(t, "^https?"+once[len("^http"):], repeated)
}

func TestCompile(t *testing.T) {
	re, err := Compile([]string{
		"http://www.domain.com/forums/viewforum_31.htm",
		"http://www.domain.com/forums/viewforum_25.htm",
	})
	require.NoError(t, err)

	assert.True(t, re.MatchString("http://www.domain.com/forums/viewforum_7.htm"))
	assert.False(t, re.MatchString("http://www.domain.com/forums/viewtopic_7.htm"))
	assert.False(t, re.MatchString("https://www.domain.com/forums/viewforum_7.htm"))
}

func TestCompile_Empty(t *testing.T) {
	re, err := Compile(nil)
	assert.Nil(t, re)

	var insufficient *InsufficientDataError
	assert.ErrorAs(t, err, &insufficient)
}

func TestInducer_Incremental(t *testing.T) {
	in := NewInducer()
	in.Learn([]string{"http://a.com/forums/viewforum_31.htm"})

	pattern, err := in.Pattern()
	require.NoError(t, err)
	assert.Equal(t, `^http://a\.com/forums/viewforum_31\.htm$`, pattern)

	in.Learn([]string{"http://a.com/forums/viewforum_25.htm"})
	pattern, err = in.Pattern()
	require.NoError(t, err)
	assert.Equal(t, `^http://a\.com/forums/viewforum_\d+\.htm$`, pattern)
	assert.Equal(t, 2, in.LearnedCount())
}

func TestInducer_Reset(t *testing.T) {
	in := NewInducer()
	in.Learn([]string{"https://a.com/x?k=v"})
	in.Reset()

	assert.Equal(t, 0, in.LearnedCount())
	assert.Nil(t, in.Generalized())

	_, err := in.Pattern()
	var insufficient *InsufficientDataError
	assert.ErrorAs(t, err, &insufficient)

	in.Learn([]string{"http://a.com/y"})
	pattern, err := in.Pattern()
	require.NoError(t, err)
	assert.Equal(t, `^http://a\.com/y$`, pattern)
}

func TestInducer_Generalized(t *testing.T) {
	in := NewInducer()
	in.Learn([]string{"http://a/b/list", "http://a/b/c/d/list"})

	got := in.Generalized()
	require.Len(t, got, 5)

	expected := []Segment{
		{Content: "a", Separator: "/"},
		{Content: "b", Separator: "/"},
		{Content: "c", Separator: "/", Optional: true},
		{Content: "d", Separator: "/", Optional: true},
		{Content: "list"},
	}
	assert.Equal(t, expected, got)

	// Callers own the returned slice.
	got[0].Content = "mutated"
	assert.Equal(t, "a", in.Generalized()[0].Content)
}

func TestInducer_WithScorer(t *testing.T) {
	urls := []string{
		"http://www.domain.fr/visage/exfoliant.aspx",
		"http://www.domain.fr/visage/toniques.aspx",
		"http://www.domain.fr/search.aspx",
	}

	distance, err := BuildPattern(urls)
	require.NoError(t, err)
	assert.Equal(t, `^http://www\.domain\.fr/[^/]+/?([^?]+\.aspx)?$`, distance)

	similarity, err := BuildPattern(urls, WithScorer(SimilarityScore))
	require.NoError(t, err)
	assert.Equal(t, `^http://www\.domain\.fr/(visage/)?[^?]+\.aspx$`, similarity)

	nilScorer, err := BuildPattern(urls, WithScorer(nil))
	require.NoError(t, err)
	assert.Equal(t, distance, nilScorer)
}

func TestInducer_Concurrent(t *testing.T) {
	in := NewInducer()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in.Learn([]string{"http://a.com/items/" + string(rune('0'+i))})
			_, _ = in.Pattern()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 8, in.LearnedCount())
	pattern, err := in.Pattern()
	require.NoError(t, err)
	assert.Equal(t, `^http://a\.com/items/\d+$`, pattern)
}
