package productcontroller

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LeeCheeHoong/PetCare-Portal/models"
	"github.com/LeeCheeHoong/PetCare-Portal/store"
)

type productFilters struct {
	Search      string   `json:"search,omitempty"`
	CategoryIDs []string `json:"categoryIds,omitempty"`
	MinPrice    *float64 `json:"minPrice,omitempty"`
	MaxPrice    *float64 `json:"maxPrice,omitempty"`
	InStock     *bool    `json:"inStock,omitempty"`
	SortBy      string   `json:"sortBy"`
	SortOrder   string   `json:"sortOrder"`
	Page        int      `json:"page"`
	Limit       int      `json:"limit"`
}

type categoryCount struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type priceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type availableFilters struct {
	Categories []categoryCount `json:"categories"`
	PriceRange priceRange      `json:"priceRange"`
}

func parseFilters(c *gin.Context) productFilters {
	f := productFilters{
		Search:      c.Query("search"),
		CategoryIDs: c.QueryArray("categoryIds"),
		SortBy:      c.DefaultQuery("sortBy", "name"),
		SortOrder:   c.DefaultQuery("sortOrder", "asc"),
		Page:        1,
		Limit:       12,
	}
	if v := c.Query("minPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &price
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &price
		}
	}
	if v := c.Query("inStock"); v != "" {
		if inStock, err := strconv.ParseBool(v); err == nil {
			f.InStock = &inStock
		}
	}
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && v >= 1 {
		f.Page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "12")); err == nil && v >= 1 && v <= 100 {
		f.Limit = v
	}
	return f
}

func filterProducts(products []models.Product, f productFilters) []models.Product {
	filtered := products

	if f.Search != "" {
		search := strings.ToLower(f.Search)
		var kept []models.Product
		for _, p := range filtered {
			if strings.Contains(strings.ToLower(p.Name), search) ||
				strings.Contains(strings.ToLower(p.Description), search) {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	if len(f.CategoryIDs) > 0 {
		wanted := make(map[string]bool, len(f.CategoryIDs))
		for _, id := range f.CategoryIDs {
			wanted[id] = true
		}
		var kept []models.Product
		for _, p := range filtered {
			if wanted[p.Category.ID] {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	if f.MinPrice != nil {
		var kept []models.Product
		for _, p := range filtered {
			if p.Price >= *f.MinPrice {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}
	if f.MaxPrice != nil {
		var kept []models.Product
		for _, p := range filtered {
			if p.Price <= *f.MaxPrice {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	if f.InStock != nil {
		var kept []models.Product
		for _, p := range filtered {
			if p.InStock == *f.InStock {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	return filtered
}

func sortProducts(products []models.Product, sortBy, sortOrder string) {
	desc := sortOrder == "desc"
	sort.SliceStable(products, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "price":
			less = products[i].Price < products[j].Price
		case "created":
			less = products[i].CreatedAt.Before(products[j].CreatedAt)
		default:
			less = strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		}
		if desc {
			return !less
		}
		return less
	})
}

// getAvailableFilters summarizes the full catalog, not the filtered subset,
// so the storefront can render every filter option.
func getAvailableFilters(products []models.Product) availableFilters {
	counts := make(map[string]*categoryCount)
	for _, p := range products {
		if existing, ok := counts[p.Category.ID]; ok {
			existing.Count++
		} else {
			counts[p.Category.ID] = &categoryCount{ID: p.Category.ID, Name: p.Category.Name, Count: 1}
		}
	}
	categories := make([]categoryCount, 0, len(counts))
	for _, cc := range counts {
		categories = append(categories, *cc)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })

	var pr priceRange
	for i, p := range products {
		if i == 0 || p.Price < pr.Min {
			pr.Min = p.Price
		}
		if p.Price > pr.Max {
			pr.Max = p.Price
		}
	}

	return availableFilters{Categories: categories, PriceRange: pr}
}

// GET /api/products
func GetAllProducts(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := parseFilters(c)

		all := s.Products.List()
		filtered := filterProducts(all, f)
		sortProducts(filtered, f.SortBy, f.SortOrder)

		total := len(filtered)
		start, end := models.PageBounds(f.Page, f.Limit, total)

		c.JSON(http.StatusOK, gin.H{
			"products":   filtered[start:end],
			"pagination": models.NewPagination(f.Page, f.Limit, total),
			"filters": gin.H{
				"appliedFilters":   f,
				"availableFilters": getAvailableFilters(all),
			},
		})
	}
}
