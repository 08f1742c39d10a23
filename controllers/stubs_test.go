package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/burkibooks/burki-api/models"
	"github.com/burkibooks/burki-api/stores"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(router *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// ----- in-memory product store -----

type stubProductStore struct {
	products []models.Product
	err      error
}

func (s *stubProductStore) ListProducts() ([]models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *stubProductStore) GetProduct(id string) (*models.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, stores.ErrNotFound
}

func (s *stubProductStore) GetProductBySlug(slug string) (*models.Product, error) {
	for i := range s.products {
		if s.products[i].Slug == slug {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, stores.ErrNotFound
}

func (s *stubProductStore) CreateProduct(product *models.Product) error {
	for i := range s.products {
		if s.products[i].Slug == product.Slug {
			return stores.ErrSlugTaken
		}
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	s.products = append(s.products, *product)
	return nil
}

func (s *stubProductStore) UpdateProduct(id string, update models.ProductUpdate) (*models.Product, error) {
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		if update.Slug != nil && *update.Slug != s.products[i].Slug {
			for j := range s.products {
				if s.products[j].Slug == *update.Slug {
					return nil, stores.ErrSlugTaken
				}
			}
		}
		update.ApplyTo(&s.products[i])
		s.products[i].UpdatedAt = time.Now()
		p := s.products[i]
		return &p, nil
	}
	return nil, stores.ErrNotFound
}

func (s *stubProductStore) DeleteProduct(id string) error {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return stores.ErrNotFound
}

// ----- in-memory order store -----

type stubOrderStore struct {
	orders []models.Order
	seq    int
}

func (s *stubOrderStore) CreateOrder(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	// Spread creation times so newest-first assertions never tie.
	now := time.Now().Add(time.Duration(s.seq) * time.Millisecond)
	s.seq++
	order.CreatedAt = now
	order.UpdatedAt = now
	s.orders = append(s.orders, *order)
	return nil
}

func (s *stubOrderStore) ListOrders() ([]models.Order, error) {
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *stubOrderStore) GetOrder(id string) (*models.Order, error) {
	for i := range s.orders {
		if s.orders[i].ID == id {
			o := s.orders[i]
			return &o, nil
		}
	}
	return nil, stores.ErrNotFound
}

func (s *stubOrderStore) UpdateOrderStatus(id, status string) (*models.Order, error) {
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = time.Now()
			o := s.orders[i]
			return &o, nil
		}
	}
	return nil, stores.ErrNotFound
}

func (s *stubOrderStore) DeleteOrder(id string) error {
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return nil
		}
	}
	return stores.ErrNotFound
}

// ----- in-memory message store -----

type stubMessageStore struct {
	messages []models.Message
}

func (s *stubMessageStore) CreateMessage(message *models.Message) error {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	message.CreatedAt = time.Now()
	s.messages = append(s.messages, *message)
	return nil
}

func (s *stubMessageStore) ListMessages() ([]models.Message, error) {
	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out, nil
}

func (s *stubMessageStore) GetMessage(id string) (*models.Message, error) {
	for i := range s.messages {
		if s.messages[i].ID == id {
			m := s.messages[i]
			return &m, nil
		}
	}
	return nil, stores.ErrNotFound
}

func (s *stubMessageStore) UpdateMessageStatus(id, status string) (*models.Message, error) {
	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].Status = status
			m := s.messages[i]
			return &m, nil
		}
	}
	return nil, stores.ErrNotFound
}

func (s *stubMessageStore) DeleteMessage(id string) error {
	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return nil
		}
	}
	return stores.ErrNotFound
}

// ----- in-memory settings store -----

type stubSettingsStore struct {
	settings models.SiteSettings
	hasRow   bool
	getErr   error
}

func (s *stubSettingsStore) GetSettings() (models.SiteSettings, error) {
	if s.getErr != nil {
		return models.DefaultSiteSettings(), s.getErr
	}
	result := models.DefaultSiteSettings()
	if s.hasRow {
		if s.settings.QuoteText != "" {
			result.QuoteText = s.settings.QuoteText
		}
		if s.settings.QuoteAuthor != "" {
			result.QuoteAuthor = s.settings.QuoteAuthor
		}
	}
	return result, nil
}

func (s *stubSettingsStore) UpdateSettings(update models.SettingsUpdate) (models.SiteSettings, error) {
	current, err := s.GetSettings()
	if err != nil {
		return current, err
	}
	if update.QuoteText != nil {
		current.QuoteText = *update.QuoteText
	}
	if update.QuoteAuthor != nil {
		current.QuoteAuthor = *update.QuoteAuthor
	}
	s.settings = current
	s.hasRow = true
	return current, nil
}

// ----- stub image uploader -----

type stubUploader struct {
	uploads map[string][]byte
	err     error
}

func (s *stubUploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	if s.uploads == nil {
		s.uploads = make(map[string][]byte)
	}
	s.uploads[key] = data
	return "https://bucket.s3.amazonaws.com/" + key, nil
}

// ----- in-memory cart store -----

// stubCartStore persists carts the same way the real store does: one JSON
// blob per cart id. That keeps the reload and corrupt-data behavior honest.
type stubCartStore struct {
	blobs map[string][]byte
}

func newStubCartStore() *stubCartStore {
	return &stubCartStore{blobs: make(map[string][]byte)}
}

func (s *stubCartStore) LoadCart(id string) (models.Cart, error) {
	return models.Cart{Items: models.DecodeCartItems(s.blobs[id])}, nil
}

func (s *stubCartStore) SaveCart(id string, cart models.Cart) error {
	blob, err := json.Marshal(cart.Items)
	if err != nil {
		return err
	}
	s.blobs[id] = blob
	return nil
}

func (s *stubCartStore) DeleteCart(id string) error {
	delete(s.blobs, id)
	return nil
}
