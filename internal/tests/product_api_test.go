// internal/tests/product_api_test.go
package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/javajoker/seller-products/internal/config"
	"github.com/javajoker/seller-products/internal/i18n"
	"github.com/javajoker/seller-products/internal/models"
	"github.com/javajoker/seller-products/internal/router"
	"github.com/javajoker/seller-products/internal/services"
	"github.com/javajoker/seller-products/internal/testutil"
	"github.com/javajoker/seller-products/internal/utils"
)

type envelope struct {
	Success bool                   `json:"success"`
	Data    json.RawMessage        `json:"data"`
	Meta    map[string]interface{} `json:"meta"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type productsData struct {
	Products []services.ProductResponse `json:"products"`
}

type productData struct {
	Product services.ProductResponse `json:"product"`
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Auth:        config.AuthConfig{SecretKey: "test-secret", AccessTokenTTL: 1},
		Log:         config.LogConfig{Level: "error", Format: "text"},
		CORS:        config.CORSConfig{AllowedOrigins: []string{"*"}},
		I18n:        config.I18nConfig{DefaultLocale: "en"},
	}
}

type ProductAPITestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	alice  *models.Seller
	bob    *models.Seller
}

func (suite *ProductAPITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	logrus.SetOutput(io.Discard)
	suite.Require().NoError(i18n.Initialize("en"))
}

func (suite *ProductAPITestSuite) SetupTest() {
	suite.db = testutil.NewDB(suite.T())
	var stop func()
	suite.router, stop = router.Initialize(suite.db, testConfig())
	suite.T().Cleanup(stop)
	suite.alice = testutil.CreateSeller(suite.T(), suite.db, "alice")
	suite.bob = testutil.CreateSeller(suite.T(), suite.db, "bob")
}

func (suite *ProductAPITestSuite) do(method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var response envelope
	if w.Body.Len() > 0 {
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	}
	return w, response
}

func productsPath(sellerID uuid.UUID) string {
	return fmt.Sprintf("/v1/sellers/%s/products", sellerID)
}

func productPath(sellerID, productID uuid.UUID) string {
	return fmt.Sprintf("/v1/sellers/%s/products/%s", sellerID, productID)
}

func (suite *ProductAPITestSuite) countProducts() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&models.Product{}).Count(&count).Error)
	return count
}

func (suite *ProductAPITestSuite) TestHealth() {
	w, _ := suite.do(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.NotEmpty(w.Header().Get("X-Request-ID"))
}

func (suite *ProductAPITestSuite) TestCreateProducts() {
	w, response := suite.do(http.MethodPost, productsPath(suite.alice.ID), []map[string]interface{}{
		{"name": "lamp", "description": "brass", "price": 12.5, "stock": 3},
		{"name": "desk", "price": "90"},
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.True(response.Success)
	suite.Equal(float64(2), response.Meta["count"])

	var data productsData
	suite.Require().NoError(json.Unmarshal(response.Data, &data))
	suite.Require().Len(data.Products, 2)
	suite.Equal("lamp", data.Products[0].Name)
	suite.Equal(suite.alice.ID, data.Products[0].SellerID)
	suite.True(data.Products[0].Price.Equal(decimal.RequireFromString("12.5")))
	suite.Equal("desk", data.Products[1].Name)
	suite.NotEqual(data.Products[0].ID, data.Products[1].ID)

	suite.Contains(w.Body.String(), `"sellerId"`)
	suite.Equal(int64(2), suite.countProducts())
}

func (suite *ProductAPITestSuite) TestCreateProductsUnknownSeller() {
	w, response := suite.do(http.MethodPost, productsPath(uuid.New()), []map[string]interface{}{
		{"name": "lamp", "price": 1},
	})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.False(response.Success)
	suite.Equal("NOT_FOUND", response.Error.Code)
	suite.Equal("Seller not found", response.Error.Message)
	suite.Zero(suite.countProducts())
}

func (suite *ProductAPITestSuite) TestCreateProductsValidation() {
	w, response := suite.do(http.MethodPost, productsPath(suite.alice.ID), []map[string]interface{}{
		{"name": "lamp", "price": 1},
		{"name": "", "price": -1},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("VALIDATION_ERROR", response.Error.Code)
	suite.Contains(w.Body.String(), `"[1].name"`)
	suite.Contains(w.Body.String(), `"[1].price"`)
	suite.Zero(suite.countProducts())
}

func (suite *ProductAPITestSuite) TestCreateProductsPriceOutOfRange() {
	w, response := suite.do(http.MethodPost, productsPath(suite.alice.ID), []map[string]interface{}{
		{"name": "yacht", "price": "123456789012345.999"},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("VALIDATION_ERROR", response.Error.Code)
	suite.Contains(w.Body.String(), `"[0].price"`)
	suite.Zero(suite.countProducts())
}

func (suite *ProductAPITestSuite) TestCreateProductsBatchTooLarge() {
	batch := make([]map[string]interface{}, 101)
	for i := range batch {
		batch[i] = map[string]interface{}{"name": fmt.Sprintf("p%d", i), "price": 1}
	}

	w, response := suite.do(http.MethodPost, productsPath(suite.alice.ID), batch)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("BAD_REQUEST", response.Error.Code)
	suite.Zero(suite.countProducts())
}

func (suite *ProductAPITestSuite) TestMalformedInput() {
	w, response := suite.do(http.MethodGet, "/v1/sellers/not-a-uuid/products", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid seller ID", response.Error.Message)

	w, response = suite.do(http.MethodGet, fmt.Sprintf("%s/not-a-uuid", productsPath(suite.alice.ID)), nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid product ID", response.Error.Message)

	w, _ = suite.do(http.MethodPost, productsPath(suite.alice.ID), map[string]interface{}{"name": "not an array"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ProductAPITestSuite) TestListProducts() {
	testutil.CreateProduct(suite.T(), suite.db, suite.alice, "lamp", 10, 1)
	testutil.CreateProduct(suite.T(), suite.db, suite.alice, "desk", 90, 2)
	testutil.CreateProduct(suite.T(), suite.db, suite.bob, "chair", 40, 3)

	w, response := suite.do(http.MethodGet, productsPath(suite.alice.ID), nil)
	suite.Equal(http.StatusOK, w.Code)

	var data productsData
	suite.Require().NoError(json.Unmarshal(response.Data, &data))
	suite.Len(data.Products, 2)
	for _, p := range data.Products {
		suite.Equal(suite.alice.ID, p.SellerID)
	}

	w, response = suite.do(http.MethodGet, productsPath(uuid.New()), nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("NOT_FOUND", response.Error.Code)
}

func (suite *ProductAPITestSuite) TestForeignProductIsNotFound() {
	chair := testutil.CreateProduct(suite.T(), suite.db, suite.bob, "chair", 40, 3)

	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		var body interface{}
		if method == http.MethodPatch {
			body = map[string]interface{}{"name": "mine now"}
		}

		w, response := suite.do(method, productPath(suite.alice.ID, chair.ID), body)
		suite.Equal(http.StatusNotFound, w.Code, method)
		suite.Equal("Product not found", response.Error.Message, method)
	}

	w, response := suite.do(http.MethodGet, productPath(suite.bob.ID, chair.ID), nil)
	suite.Equal(http.StatusOK, w.Code)

	var data productData
	suite.Require().NoError(json.Unmarshal(response.Data, &data))
	suite.Equal("chair", data.Product.Name)
}

func (suite *ProductAPITestSuite) TestUpdateProductMergesFields() {
	lamp := testutil.CreateProduct(suite.T(), suite.db, suite.alice, "lamp", 10, 1)

	w, response := suite.do(http.MethodPatch, productPath(suite.alice.ID, lamp.ID), map[string]interface{}{
		"price": 15,
	})
	suite.Equal(http.StatusOK, w.Code)

	var data productData
	suite.Require().NoError(json.Unmarshal(response.Data, &data))
	suite.Equal("lamp", data.Product.Name)
	suite.Equal("lamp description", data.Product.Description)
	suite.Equal(1, data.Product.Stock)
	suite.True(data.Product.Price.Equal(decimal.NewFromInt(15)))

	w, _ = suite.do(http.MethodPatch, productPath(suite.alice.ID, lamp.ID), map[string]interface{}{
		"stock": -4,
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ProductAPITestSuite) TestUpdateProductsAllOrNothing() {
	lamp := testutil.CreateProduct(suite.T(), suite.db, suite.alice, "lamp", 10, 1)
	chair := testutil.CreateProduct(suite.T(), suite.db, suite.bob, "chair", 40, 3)

	w, _ := suite.do(http.MethodPatch, productsPath(suite.alice.ID), []map[string]interface{}{
		{"id": lamp.ID, "name": "renamed"},
		{"id": chair.ID, "name": "stolen"},
	})
	suite.Equal(http.StatusNotFound, w.Code)

	var stored models.Product
	suite.Require().NoError(suite.db.First(&stored, "id = ?", lamp.ID).Error)
	suite.Equal("lamp", stored.Name)

	w, response := suite.do(http.MethodPatch, productsPath(suite.alice.ID), []map[string]interface{}{
		{"id": lamp.ID, "name": "renamed"},
	})
	suite.Equal(http.StatusOK, w.Code)

	var data productsData
	suite.Require().NoError(json.Unmarshal(response.Data, &data))
	suite.Require().Len(data.Products, 1)
	suite.Equal("renamed", data.Products[0].Name)
	suite.Equal(1, data.Products[0].Stock)
}

func (suite *ProductAPITestSuite) TestUpdateProductsRequiresID() {
	w, response := suite.do(http.MethodPatch, productsPath(suite.alice.ID), []map[string]interface{}{
		{"name": "no id"},
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("VALIDATION_ERROR", response.Error.Code)
}

func (suite *ProductAPITestSuite) TestDeleteProducts() {
	lamp := testutil.CreateProduct(suite.T(), suite.db, suite.alice, "lamp", 10, 1)
	desk := testutil.CreateProduct(suite.T(), suite.db, suite.alice, "desk", 90, 2)

	w, response := suite.do(http.MethodDelete, productsPath(suite.alice.ID), []map[string]interface{}{
		{"id": lamp.ID},
		{"id": desk.ID},
		{"id": lamp.ID},
	})
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(float64(2), response.Meta["count"])
	suite.Zero(suite.countProducts())

	w, _ = suite.do(http.MethodGet, productPath(suite.alice.ID, lamp.ID), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ProductAPITestSuite) TestDeleteProduct() {
	lamp := testutil.CreateProduct(suite.T(), suite.db, suite.alice, "lamp", 10, 1)

	w, response := suite.do(http.MethodDelete, productPath(suite.alice.ID, lamp.ID), nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.True(response.Success)

	w, _ = suite.do(http.MethodDelete, productPath(suite.alice.ID, lamp.ID), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestProductAPISuite(t *testing.T) {
	suite.Run(t, new(ProductAPITestSuite))
}

func TestSellerAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logrus.SetOutput(io.Discard)
	assert.NoError(t, i18n.Initialize("en"))

	cfg := testConfig()
	cfg.Auth.Enabled = true
	utils.SetJWTSecret(cfg.Auth.SecretKey)

	db := testutil.NewDB(t)
	r, stop := router.Initialize(db, cfg)
	defer stop()
	alice := testutil.CreateSeller(t, db, "alice")
	bob := testutil.CreateSeller(t, db, "bob")

	get := func(token string) int {
		req, _ := http.NewRequest(http.MethodGet, productsPath(alice.ID), nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	aliceToken, err := utils.GenerateJWT(alice.ID, 1)
	assert.NoError(t, err)
	bobToken, err := utils.GenerateJWT(bob.ID, 1)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(""))
	assert.Equal(t, http.StatusUnauthorized, get("garbage"))
	assert.Equal(t, http.StatusForbidden, get(bobToken))
	assert.Equal(t, http.StatusOK, get(aliceToken))
}
