package order

// Status is the lifecycle state of an order.
type Status string

// Order statuses.
const (
	StatusCreated    Status = "CREATED"
	StatusConfirmed  Status = "CONFIRMED"
	StatusPurchased  Status = "PURCHASED"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
	StatusReturned   Status = "RETURNED"
)

// IsValid reports whether s is a known order status.
func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusConfirmed, StatusPurchased, StatusProcessing,
		StatusShipped, StatusDelivered, StatusCompleted, StatusCancelled, StatusReturned:
		return true
	}
	return false
}

// ItemStatus is the lifecycle state of a line item or shipment.
type ItemStatus string

// Item statuses.
const (
	ItemCreated    ItemStatus = "CREATED"
	ItemConfirmed  ItemStatus = "CONFIRMED"
	ItemPending    ItemStatus = "PENDING"
	ItemProcessing ItemStatus = "PROCESSING"
	ItemShipped    ItemStatus = "SHIPPED"
	ItemDelivered  ItemStatus = "DELIVERED"
	ItemCompleted  ItemStatus = "COMPLETED"
	ItemCancelled  ItemStatus = "CANCELLED"
)

// PaymentStatus is the outcome of a payment attempt.
type PaymentStatus string

// Payment statuses.
const (
	PaymentSuccessful PaymentStatus = "SUCCESSFUL"
	PaymentFailed     PaymentStatus = "FAILED"
	PaymentPending    PaymentStatus = "PENDING"
)

// PaymentMethod identifies how a payment was made.
type PaymentMethod string

// Payment methods.
const (
	MethodCW            PaymentMethod = "CW"
	MethodCard          PaymentMethod = "CARD"
	MethodCash          PaymentMethod = "CASH"
	MethodBankTransfer  PaymentMethod = "BANK_TRANSFER"
	MethodOnlineGateway PaymentMethod = "ONLINE_GATEWAY"
	MethodOther         PaymentMethod = "OTHER"
)

// Gender of the ordering party.
type Gender string

// Genders.
const (
	GenderMale    Gender = "MALE"
	GenderFemale  Gender = "FEMALE"
	GenderUnknown Gender = "UNKNOWN"
)

// CustomerType distinguishes account kinds.
type CustomerType string

// Customer types.
const (
	CustomerIndividual CustomerType = "INDIVIDUAL"
	CustomerBusiness   CustomerType = "BUSINESS"
)

// ProvisioningStatus is the activation state of a digital service.
type ProvisioningStatus string

// Provisioning statuses.
const (
	ProvisioningActive   ProvisioningStatus = "ACTIVE"
	ProvisioningInactive ProvisioningStatus = "INACTIVE"
	ProvisioningPending  ProvisioningStatus = "PENDING"
)

// ProvisioningType is the kind of service activation.
type ProvisioningType string

// Provisioning types.
const (
	ProvisioningNewActivation ProvisioningType = "NEW_ACTIVATION"
	ProvisioningMigration     ProvisioningType = "MIGRATION"
	ProvisioningUpgrade       ProvisioningType = "UPGRADE"
)

// ContactMethod is the preferred customer contact channel.
type ContactMethod string

// Contact methods.
const (
	ContactSMS   ContactMethod = "SMS"
	ContactEmail ContactMethod = "EMAIL"
	ContactCall  ContactMethod = "CALL"
)

// ItemType classifies a line item.
type ItemType string

// Item types.
const (
	ItemPhysical       ItemType = "PHYSICAL"
	ItemDigital        ItemType = "DIGITAL"
	ItemDigitalService ItemType = "DIGITAL_SERVICE"
)
