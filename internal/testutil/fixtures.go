package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/remib/phonestore/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	fullName string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		fullName: fmt.Sprintf("Test User %s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithFullName sets the full name
func (b *UserBuilder) WithFullName(name string) *UserBuilder {
	b.fullName = name
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		FullName:     b.fullName,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// LoginResponse matches the API login response
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"user"`
}

// BuildAndAuthenticate creates a user in the database, logs in via the API
// and returns the user and session token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, password := b.Build(t, ts.DB.DB)

	reqBody := map[string]string{
		"email":    b.email,
		"password": password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to log in: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected login status code: %d", resp.StatusCode)
	}

	var loginResp LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	return user, loginResp.Token
}

// ProductBuilder creates test catalog entries
type ProductBuilder struct {
	name     string
	price    float64
	imageURL string
	specs    map[string]string
}

// NewProductBuilder creates a new ProductBuilder with default values
func NewProductBuilder() *ProductBuilder {
	suffix := uuid.New().String()[:8]
	return &ProductBuilder{
		name:     fmt.Sprintf("Phone %s", suffix),
		price:    499.99,
		imageURL: fmt.Sprintf("https://cdn.example.com/products/%s.png", suffix),
	}
}

// WithName sets the product name
func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.name = name
	return b
}

// WithPrice sets the catalog price
func (b *ProductBuilder) WithPrice(price float64) *ProductBuilder {
	b.price = price
	return b
}

// WithSpecs sets the spec sheet
func (b *ProductBuilder) WithSpecs(specs map[string]string) *ProductBuilder {
	b.specs = specs
	return b
}

// Build creates the product in the database
func (b *ProductBuilder) Build(t *testing.T, db *gorm.DB) *domain.Product {
	t.Helper()

	product := &domain.Product{
		Name:     b.name,
		Price:    b.price,
		ImageURL: b.imageURL,
	}

	if b.specs != nil {
		specsJSON, _ := json.Marshal(b.specs)
		product.Specs = datatypes.JSON(specsJSON)
	}

	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	return product
}

// SeedProducts creates N test products in the database
func SeedProducts(t *testing.T, db *gorm.DB, count int) []*domain.Product {
	t.Helper()

	products := make([]*domain.Product, count)
	for i := 0; i < count; i++ {
		products[i] = NewProductBuilder().
			WithName(fmt.Sprintf("Test Phone %d", i)).
			WithPrice(99.99 + float64(i)).
			Build(t, db)
	}
	return products
}

// OrderBuilder creates test orders with line items
type OrderBuilder struct {
	user  *domain.User
	lines []domain.OrderLine
}

// NewOrderBuilder creates a new OrderBuilder
func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{}
}

// WithUser sets the order owner
func (b *OrderBuilder) WithUser(user *domain.User) *OrderBuilder {
	b.user = user
	return b
}

// WithLine adds a line item
func (b *OrderBuilder) WithLine(product *domain.Product, quantity int, priceAtOrder float64) *OrderBuilder {
	b.lines = append(b.lines, domain.OrderLine{
		ProductID:    product.ID,
		Quantity:     quantity,
		PriceAtOrder: priceAtOrder,
	})
	return b
}

// Build creates the order and its lines in the database
func (b *OrderBuilder) Build(t *testing.T, db *gorm.DB) *domain.Order {
	t.Helper()

	if b.user == nil {
		user, _ := NewUserBuilder().Build(t, db)
		b.user = user
	}

	order := &domain.Order{
		ID:        uuid.New(),
		UserID:    b.user.ID,
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now(),
	}

	if err := db.Create(order).Error; err != nil {
		t.Fatalf("failed to create order: %v", err)
	}

	for i := range b.lines {
		b.lines[i].OrderID = order.ID
	}
	if len(b.lines) > 0 {
		if err := db.Create(&b.lines).Error; err != nil {
			t.Fatalf("failed to create order lines: %v", err)
		}
	}
	order.Lines = b.lines

	return order
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}
