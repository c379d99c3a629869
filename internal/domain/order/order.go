// Package order defines the Order aggregate read from the search index.
// Orders are immutable snapshots: every nested entity is owned by the Order
// it arrived with and lives only as long as the containing response.
package order

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/kailas-cloud/ordex/internal/domain"
)

// CustomerAccount is the account identity behind an order.
type CustomerAccount struct {
	AccountID         string       `json:"accountId" validate:"required"`
	Type              CustomerType `json:"type" validate:"required,oneof=INDIVIDUAL BUSINESS"`
	LoyaltyTier       string       `json:"loyaltyTier,omitempty"`
	VIP               bool         `json:"vip"`
	CustomerSince     string       `json:"customerSince,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PreferredLanguage string       `json:"preferredLanguage,omitempty" validate:"omitempty,min=2,max=5"`
}

// ContactPoints holds the party's reachable channels.
type ContactPoints struct {
	Mobile          string        `json:"mobile,omitempty"`
	Email           string        `json:"email,omitempty" validate:"omitempty,email"`
	PreferredMethod ContactMethod `json:"preferredMethod,omitempty" validate:"omitempty,oneof=SMS EMAIL CALL"`
}

// Party is the person behind the order. Sensitive: identity fields are
// subject to the redaction policy.
type Party struct {
	NationalID    string        `json:"nationalId,omitempty"`
	FullName      string        `json:"fullName,omitempty"`
	ContactPoints ContactPoints `json:"contactPoints"`
	BirthDate     string        `json:"birthDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender        Gender        `json:"gender,omitempty" validate:"omitempty,oneof=MALE FEMALE UNKNOWN"`
}

// PriceSummary holds order totals in integer minor-currency units. The
// payable == total - discount invariant is upstream's responsibility; data
// arrives pre-computed.
type PriceSummary struct {
	TotalAmount    int64  `json:"totalAmount" validate:"gte=0"`
	DiscountAmount int64  `json:"discountAmount" validate:"gte=0"`
	PayableAmount  int64  `json:"payableAmount" validate:"gte=0"`
	Currency       string `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// ProductAttributes are type-specific attributes of a physical product.
// MacID is a sensitive hardware identifier.
type ProductAttributes struct {
	Brand    string `json:"brand,omitempty"`
	Model    string `json:"model,omitempty"`
	MacID    string `json:"mac_id,omitempty"`
	Category string `json:"category,omitempty"`
}

// ProductOrderItem is a physical line item.
type ProductOrderItem struct {
	ItemID        string            `json:"itemId" validate:"required"`
	ProductID     string            `json:"productId" validate:"required"`
	SKU           string            `json:"sku" validate:"required"`
	Status        ItemStatus        `json:"status" validate:"required,oneof=CREATED CONFIRMED PENDING PROCESSING SHIPPED DELIVERED COMPLETED CANCELLED"`
	Type          ItemType          `json:"type,omitempty" validate:"omitempty,oneof=PHYSICAL DIGITAL DIGITAL_SERVICE"`
	Quantity      int               `json:"quantity" validate:"gte=0"`
	UnitPrice     int64             `json:"unitPrice" validate:"gte=0"`
	TotalPrice    int64             `json:"totalPrice" validate:"gte=0"`
	StockLocation string            `json:"stockLocation,omitempty"`
	Attributes    ProductAttributes `json:"attributes"`
}

// ServiceAttributes are type-specific attributes of a digital service.
type ServiceAttributes struct {
	PlanType      string `json:"planType,omitempty"`
	PlanName      string `json:"planName,omitempty"`
	DataAllowance string `json:"dataAllowance,omitempty"`
	Bandwidth     string `json:"bandwidth,omitempty"`
	Category      string `json:"category,omitempty"`
}

// Provisioning tracks service activation state for a service item.
type Provisioning struct {
	Status           ProvisioningStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE PENDING"`
	ProvisioningType ProvisioningType   `json:"provisioningType,omitempty" validate:"omitempty,oneof=NEW_ACTIVATION MIGRATION UPGRADE"`
	TargetIdentifier string             `json:"targetIdentifier,omitempty"`
	ServiceIDs       []string           `json:"serviceIds,omitempty"`
	ActivationDate   Millis             `json:"activationDate,omitzero"`
	BillingStartDate Millis             `json:"billingStartDate,omitzero"`
}

// ServiceOrderItem is a digital-service line item.
type ServiceOrderItem struct {
	ItemID       string            `json:"itemId" validate:"required"`
	ProductID    string            `json:"productId" validate:"required"`
	SKU          string            `json:"sku" validate:"required"`
	Status       ItemStatus        `json:"status" validate:"required,oneof=CREATED CONFIRMED PENDING PROCESSING SHIPPED DELIVERED COMPLETED CANCELLED"`
	Type         ItemType          `json:"type,omitempty" validate:"omitempty,oneof=PHYSICAL DIGITAL DIGITAL_SERVICE"`
	Quantity     int               `json:"quantity" validate:"gte=0"`
	UnitPrice    int64             `json:"unitPrice" validate:"gte=0"`
	TotalPrice   int64             `json:"totalPrice" validate:"gte=0"`
	BundleID     string            `json:"bundleId,omitempty"`
	Attributes   ServiceAttributes `json:"attributes"`
	Provisioning Provisioning      `json:"provisioning"`
}

// ShipmentAddress is a delivery address. City and postal code are sensitive.
type ShipmentAddress struct {
	FullAddress string `json:"fullAddress,omitempty"`
	City        string `json:"city,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	Country     string `json:"country,omitempty"`
}

// ShipmentHistoryItem is one status event in a shipment's history.
type ShipmentHistoryItem struct {
	Status        ItemStatus `json:"status" validate:"required,oneof=CREATED CONFIRMED PENDING PROCESSING SHIPPED DELIVERED COMPLETED CANCELLED"`
	Timestamp     Millis     `json:"timestamp,omitzero"`
	RecipientName string     `json:"recipientName,omitempty"`
}

// ShipmentOrder is one physical delivery belonging to the order.
type ShipmentOrder struct {
	ShipmentID     string                `json:"shipmentId" validate:"required"`
	Status         ItemStatus            `json:"status" validate:"required,oneof=CREATED CONFIRMED PENDING PROCESSING SHIPPED DELIVERED COMPLETED CANCELLED"`
	TrackingNumber string                `json:"trackingNumber,omitempty"`
	Carrier        string                `json:"carrier,omitempty"`
	Items          []string              `json:"items,omitempty"`
	Address        ShipmentAddress       `json:"address"`
	History        []ShipmentHistoryItem `json:"history,omitempty" validate:"omitempty,dive"`
}

// PaymentTransaction is a single processor-level transaction.
type PaymentTransaction struct {
	ID                string `json:"id" validate:"required"`
	Type              string `json:"type,omitempty" validate:"omitempty,oneof=SALE REFUND AUTH CAPTURE"`
	Amount            int64  `json:"amount" validate:"gte=0"`
	ProcessedAt       Millis `json:"processedAt,omitzero"`
	AuthorizationCode string `json:"authorizationCode,omitempty"`
}

// Payment is one payment attempt with its transactions.
type Payment struct {
	Method       PaymentMethod        `json:"method" validate:"required,oneof=CW CARD CASH BANK_TRANSFER ONLINE_GATEWAY OTHER"`
	Status       PaymentStatus        `json:"status" validate:"required,oneof=SUCCESSFUL FAILED PENDING"`
	Provider     string               `json:"provider,omitempty"`
	Transactions []PaymentTransaction `json:"transactions" validate:"omitempty,dive"`
}

// Invoice is a billing document issued for the order.
type Invoice struct {
	InvoiceID string `json:"invoiceId" validate:"required"`
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=PAID UNPAID VOID REFUNDED"`
	IssueDate Millis `json:"issueDate,omitzero"`
	Amount    int64  `json:"amount" validate:"gte=0"`
	TaxAmount int64  `json:"taxAmount" validate:"gte=0"`
	Currency  string `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// AuditDetails records a single field change.
type AuditDetails struct {
	Field string `json:"field,omitempty"`
	From  string `json:"from,omitempty"`
	To    string `json:"to,omitempty"`
}

// AuditTrailItem is one entry in the order's audit trail.
type AuditTrailItem struct {
	Timestamp   Millis        `json:"timestamp,omitzero"`
	Action      string        `json:"action" validate:"required"`
	PerformedBy string        `json:"performedBy,omitempty"`
	Details     *AuditDetails `json:"details,omitempty"`
}

// Order is the root aggregate, constructed fresh on every read.
type Order struct {
	OrderID   string `json:"orderId" validate:"required"`
	Status    Status `json:"status" validate:"required,oneof=CREATED CONFIRMED PURCHASED PROCESSING SHIPPED DELIVERED COMPLETED CANCELLED RETURNED"`
	CreatedAt Millis `json:"createdAt" validate:"required"`
	UpdatedAt Millis `json:"updatedAt" validate:"required"`
	Channel   string `json:"channel,omitempty"`

	CustomerAccount CustomerAccount `json:"customerAccount"`
	Party           Party           `json:"party"`
	PriceSummary    PriceSummary    `json:"priceSummary"`

	AppliedDiscounts  []json.RawMessage  `json:"appliedDiscounts,omitempty"`
	ProductOrderItems []ProductOrderItem `json:"productOrderItems,omitempty" validate:"omitempty,dive"`
	ServiceOrderItems []ServiceOrderItem `json:"serviceOrderItems,omitempty" validate:"omitempty,dive"`
	ShipmentOrders    []ShipmentOrder    `json:"shipmentOrders,omitempty" validate:"omitempty,dive"`
	Payment           []Payment          `json:"payment,omitempty" validate:"omitempty,dive"`
	Invoices          []Invoice          `json:"invoices,omitempty" validate:"omitempty,dive"`
	Returns           []json.RawMessage  `json:"returns,omitempty"`
	Communications    []json.RawMessage  `json:"communications,omitempty"`
	AuditTrail        []AuditTrailItem   `json:"auditTrail,omitempty" validate:"omitempty,dive"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Expose Millis as time.Time so `required` means non-zero instant.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if m, ok := field.Interface().(Millis); ok {
			return m.Time
		}
		return nil
	}, Millis{})
	return v
}

// Validate checks the aggregate against the domain's field constraints.
func (o *Order) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidOrder, err)
	}
	return nil
}
