package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Product mirrors the catalog feed. Price is the per-day rate in rupiah.
// The catalog is read-only: products are loaded once and never mutated.
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Title          string          `json:"title"`
	Model          string          `json:"model"`
	Type           string          `json:"type"`
	Status         string          `json:"status"`
	Price          int             `json:"price"`
	Slug           string          `json:"slug"`
	Description    string          `json:"description,omitempty"`
	Category       *Category       `json:"category,omitempty"`
	Manufacturer   *Manufacturer   `json:"manufacturer,omitempty"`
	Images         []Image         `json:"images,omitempty"`
	DefaultPackage *DefaultPackage `json:"default_package,omitempty"`
}

type Image struct {
	ID    string `json:"id"`
	Image string `json:"image"`
	Order int    `json:"order"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type Manufacturer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// DefaultPackage lists what ships in the box for package-type products
// (body + lens + accessories as one rentable unit).
type DefaultPackage struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Title      string             `json:"title,omitempty"`
	Model      string             `json:"model"`
	Type       string             `json:"type"`
	Price      int                `json:"price"`
	Slug       string             `json:"slug"`
	Components []PackageComponent `json:"components,omitempty"`
}

type PackageComponent struct {
	ID       string            `json:"id"`
	Order    int               `json:"order"`
	Quantity int               `json:"quantity"`
	Product  *ComponentProduct `json:"product,omitempty"`
}

type ComponentProduct struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Type  string `json:"type"`
	Price int    `json:"price"`
	Slug  string `json:"slug"`
}

// Catalog indexes an immutable product list by id and slug.
type Catalog struct {
	products []Product
	byID     map[string]int
	bySlug   map[string]int
}

func New(products []Product) *Catalog {
	c := &Catalog{
		products: products,
		byID:     make(map[string]int, len(products)),
		bySlug:   make(map[string]int, len(products)),
	}
	for i, p := range products {
		c.byID[p.ID] = i
		c.bySlug[p.Slug] = i
	}
	return c
}

// Load reads a product feed from a JSON file.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var products []Product
	if err := json.Unmarshal(b, &products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(products), nil
}

func (c *Catalog) List() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) ByID(id string) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) BySlug(slug string) (Product, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) Len() int { return len(c.products) }

// FormatIDR renders a rupiah amount the Indonesian way: "Rp 2.250.000".
// No sub-unit digits, dot as thousands separator.
func FormatIDR(amount int) string {
	s := strconv.Itoa(amount)
	neg := false
	if amount < 0 {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "." + s[i:]
	}
	if neg {
		return "-Rp " + s
	}
	return "Rp " + s
}
