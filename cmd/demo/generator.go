package main

import (
	"fmt"
	"math/rand"
)

// family is one kind of site section the demo learns a pattern for.
type family struct {
	name     string
	generate func(g *URLGenerator) string
}

var families = []family{
	{name: "Forum threads", generate: (*URLGenerator).forumURL},
	{name: "Product pages", generate: (*URLGenerator).productURL},
	{name: "Search results", generate: (*URLGenerator).searchURL},
	{name: "Blog archive", generate: (*URLGenerator).blogURL},
}

// URLGenerator generates sample URLs for each family.
type URLGenerator struct {
	rng *rand.Rand
}

// NewURLGenerator creates a new URL generator with the given seed.
func NewURLGenerator(seed int64) *URLGenerator {
	return &URLGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GenerateBatch produces n URLs of the given family.
func (g *URLGenerator) GenerateBatch(f family, n int) []string {
	urls := make([]string, n)
	for i := range urls {
		urls[i] = f.generate(g)
	}
	return urls
}

func (g *URLGenerator) pick(options ...string) string {
	return options[g.rng.Intn(len(options))]
}

func (g *URLGenerator) slug() string {
	words := []string{"awesome", "cool", "new", "updated", "fresh", "best", "top", "great", "amazing", "super"}
	nouns := []string{"product", "post", "article", "item", "thing", "stuff", "deal", "offer", "review", "guide"}
	return g.pick(words...) + "-" + g.pick(nouns...)
}

func (g *URLGenerator) forumURL() string {
	host := g.pick("forum.example.com", "www.example.com")
	kind := g.pick("viewforum", "viewtopic")
	return fmt.Sprintf("http://%s/forums/%s_%d.htm", host, kind, 1+g.rng.Intn(5000))
}

func (g *URLGenerator) productURL() string {
	category := g.pick("computers", "printers", "scanners", "phones", "cameras")
	scheme := g.pick("http", "https")
	return fmt.Sprintf("%s://shop.example.com/products/%s/%d/%s.html", scheme, category, 100+g.rng.Intn(90000), g.slug())
}

func (g *URLGenerator) searchURL() string {
	u := fmt.Sprintf("https://www.example.com/search?q=%s", g.pick("shoes", "hats", "socks", "coats"))
	if g.rng.Intn(2) == 0 {
		u += fmt.Sprintf("&page=%d", 1+g.rng.Intn(40))
	}
	if g.rng.Intn(4) == 0 {
		u += "&sort=" + g.pick("asc", "desc")
	}
	return u
}

func (g *URLGenerator) blogURL() string {
	year := 2015 + g.rng.Intn(10)
	month := 1 + g.rng.Intn(12)
	return fmt.Sprintf("https://blog.example.com/%d/%02d/%s-%d", year, month, g.slug(), g.rng.Intn(999))
}
