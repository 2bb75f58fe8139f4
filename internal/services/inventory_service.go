package services

import (
	"errors"
	"fmt"
	"time"

	"shoptrack/internal/ids"
	"shoptrack/internal/models"
	"shoptrack/internal/repositories"
	"shoptrack/internal/timeutil"
)

// InventoryService coordinates the cross-ledger mutations: adding a product
// also writes its acquisition into the purchase ledger, and recording a sale
// decrements (or retires) the product it came from.
//
// Neither pair of writes is transactional, so ordering is chosen so the
// dependent record can never be orphaned: the product write goes first and
// the append-only ledger write second, with a compensating rollback of the
// first write if the second fails. Only a failed rollback surfaces as a
// ConsistencyFault.
type InventoryService struct {
	ProductRepo  *repositories.ProductRepository
	SaleRepo     *repositories.SaleRepository
	PurchaseRepo *repositories.PurchaseRepository
	SequenceRepo *repositories.SequenceRepository
	IDs          ids.Generator

	// Now is the clock used for dateAdded and sale dates. Tests pin it.
	Now func() time.Time
}

// NewInventoryService creates the mutation coordinator.
func NewInventoryService(
	productRepo *repositories.ProductRepository,
	saleRepo *repositories.SaleRepository,
	purchaseRepo *repositories.PurchaseRepository,
	sequenceRepo *repositories.SequenceRepository,
	gen ids.Generator,
) *InventoryService {
	return &InventoryService{
		ProductRepo:  productRepo,
		SaleRepo:     saleRepo,
		PurchaseRepo: purchaseRepo,
		SequenceRepo: sequenceRepo,
		IDs:          gen,
		Now:          timeutil.Now,
	}
}

// AddProduct creates a new in-stock product and its correlated purchase
// record. Both writes succeed or the operation fails as a whole.
func (s *InventoryService) AddProduct(req *models.AddProductRequest) (*models.Product, *models.Purchase, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	// Number the bill before touching either ledger; a sequence failure
	// aborts with zero writes.
	billNumber, err := s.SequenceRepo.NextBillNumber()
	if err != nil {
		return nil, nil, err
	}

	now := s.Now()
	product := models.Product{
		ID:            s.IDs.NewID(),
		Name:          req.Name,
		Brand:         req.Brand,
		Category:      req.Category,
		IMEI:          req.IMEI,
		Color:         req.Color,
		Storage:       req.Storage,
		MfgDate:       req.MfgDate,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		Quantity:      req.Quantity,
		Supplier:      req.Supplier,
		DateAdded:     now,
		Status:        models.StatusInStock,
	}

	supplier := req.Supplier
	if supplier == "" {
		supplier = "N/A"
	}
	purchase := models.Purchase{
		ID:                s.IDs.NewID(),
		ProductName:       req.Name,
		Brand:             req.Brand,
		Category:          req.Category,
		IMEI:              req.IMEI,
		Color:             req.Color,
		Storage:           req.Storage,
		Quantity:          req.Quantity,
		PurchasePrice:     req.PurchasePrice,
		ExpectedSalePrice: req.SalePrice,
		Supplier:          supplier,
		Date:              now,
		BillNumber:        billNumber,
	}

	if err := s.ProductRepo.Add(product); err != nil {
		return nil, nil, err
	}
	if err := s.PurchaseRepo.Add(purchase); err != nil {
		if rbErr := s.ProductRepo.Remove(product.ID); rbErr != nil {
			return nil, nil, &ConsistencyFault{
				Op:       "add product",
				Survivor: fmt.Sprintf("product %s has no purchase record", product.ID),
				Err:      errors.Join(err, rbErr),
			}
		}
		return nil, nil, err
	}
	return &product, &purchase, nil
}

// RecordSale sells one unit of the given product: it appends an immutable
// sale record and decrements the product, retiring it at quantity zero.
// Profit is fixed at sale time from the product's current purchase price.
func (s *InventoryService) RecordSale(req *models.RecordSaleRequest) (*models.Sale, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	product, err := s.ProductRepo.Get(req.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductUnavailable
		}
		return nil, err
	}
	if !product.InStock() {
		return nil, ErrProductUnavailable
	}

	invoiceNumber, err := s.SequenceRepo.NextInvoiceNumber()
	if err != nil {
		return nil, err
	}

	sale := models.Sale{
		ID:            s.IDs.NewID(),
		ProductID:     product.ID,
		ProductName:   product.Name,
		IMEI:          product.IMEI,
		SalePrice:     req.SalePrice,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		PaymentMethod: req.PaymentMethod,
		Profit:        req.SalePrice - product.PurchasePrice,
		Date:          s.Now(),
		InvoiceNumber: invoiceNumber,
	}

	// Dependent write first: with the product already decremented, a failed
	// sale append can only ever leave missing revenue, never an orphaned
	// sale against stock that was not taken.
	newQty := product.Quantity - 1
	patch := models.ProductPatch{Quantity: &newQty}
	if newQty == 0 {
		status := models.StatusSold
		patch.Status = &status
	}
	if err := s.ProductRepo.Update(product.ID, patch); err != nil {
		return nil, err
	}

	if err := s.SaleRepo.Add(sale); err != nil {
		restore := models.ProductPatch{Quantity: &product.Quantity, Status: &product.Status}
		if rbErr := s.ProductRepo.Update(product.ID, restore); rbErr != nil {
			return nil, &ConsistencyFault{
				Op:       "record sale",
				Survivor: fmt.Sprintf("product %s was decremented without a sale record", product.ID),
				Err:      errors.Join(err, rbErr),
			}
		}
		return nil, err
	}
	return &sale, nil
}
