package atoship

import "time"

// Weight and dimension units accepted by the API.
const (
	WeightUnitLB = "lb"
	WeightUnitKG = "kg"
	WeightUnitOZ = "oz"
	WeightUnitG  = "g"

	DimensionUnitIN = "in"
	DimensionUnitCM = "cm"
)

// Order statuses.
const (
	OrderStatusPending    = "PENDING"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
	OrderStatusReturned   = "RETURNED"
)

// Order sources.
const (
	OrderSourceManual  = "MANUAL"
	OrderSourceAPI     = "API"
	OrderSourceShopify = "SHOPIFY"
	OrderSourceEbay    = "EBAY"
	OrderSourceAmazon  = "AMAZON"
)

// Label statuses.
const (
	LabelStatusPending   = "PENDING"
	LabelStatusPurchased = "PURCHASED"
	LabelStatusCancelled = "CANCELLED"
	LabelStatusRefunded  = "REFUNDED"
)

// Address types.
const (
	AddressTypeShipping = "SHIPPING"
	AddressTypeBilling  = "BILLING"
)

// Address is a shipping or billing address. Postal code format is checked
// against the declared country.
type Address struct {
	ID          string     `json:"id,omitempty"`
	Type        string     `json:"type" validate:"required,oneof=SHIPPING BILLING"`
	Name        string     `json:"name" validate:"required"`
	Company     string     `json:"company,omitempty"`
	Street1     string     `json:"street1" validate:"required"`
	Street2     string     `json:"street2,omitempty"`
	City        string     `json:"city" validate:"required"`
	State       string     `json:"state" validate:"required"`
	PostalCode  string     `json:"postalCode" validate:"required"`
	Country     string     `json:"country" validate:"required"`
	Phone       string     `json:"phone,omitempty" validate:"omitempty,phone"`
	Email       string     `json:"email,omitempty" validate:"omitempty,email"`
	IsDefault   bool       `json:"isDefault,omitempty"`
	IsValidated bool       `json:"isValidated,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID            string  `json:"id,omitempty"`
	Name          string  `json:"name" validate:"required"`
	SKU           string  `json:"sku" validate:"required"`
	Quantity      int     `json:"quantity" validate:"required,min=1"`
	UnitPrice     float64 `json:"unitPrice" validate:"gte=0"`
	Weight        float64 `json:"weight" validate:"required,gt=0"`
	WeightUnit    string  `json:"weightUnit" validate:"required,oneof=lb kg oz g"`
	Description   string  `json:"description,omitempty"`
	HSCode        string  `json:"hsCode,omitempty"`
	OriginCountry string  `json:"originCountry,omitempty"`
	Value         float64 `json:"value,omitempty"`
}

// Order is the full order resource as returned by the API.
type Order struct {
	ID                  string         `json:"id,omitempty"`
	OrderNumber         string         `json:"orderNumber" validate:"required"`
	Status              string         `json:"status,omitempty"`
	Source              string         `json:"source,omitempty"`
	RecipientName       string         `json:"recipientName" validate:"required"`
	RecipientCompany    string         `json:"recipientCompany,omitempty"`
	RecipientStreet1    string         `json:"recipientStreet1" validate:"required"`
	RecipientStreet2    string         `json:"recipientStreet2,omitempty"`
	RecipientCity       string         `json:"recipientCity" validate:"required"`
	RecipientState      string         `json:"recipientState" validate:"required"`
	RecipientPostalCode string         `json:"recipientPostalCode" validate:"required"`
	RecipientCountry    string         `json:"recipientCountry" validate:"required"`
	RecipientPhone      string         `json:"recipientPhone,omitempty"`
	RecipientEmail      string         `json:"recipientEmail,omitempty"`
	PackageLength       float64        `json:"packageLength,omitempty"`
	PackageWidth        float64        `json:"packageWidth,omitempty"`
	PackageHeight       float64        `json:"packageHeight,omitempty"`
	PackageWeight       float64        `json:"packageWeight,omitempty"`
	WeightUnit          string         `json:"weightUnit,omitempty"`
	DimensionUnit       string         `json:"dimensionUnit,omitempty"`
	Items               []OrderItem    `json:"items" validate:"required,min=1,dive"`
	FromAddressID       string         `json:"fromAddressId,omitempty"`
	ToAddressID         string         `json:"toAddressId,omitempty"`
	CreatedAt           *time.Time     `json:"createdAt,omitempty"`
	UpdatedAt           *time.Time     `json:"updatedAt,omitempty"`
	ShippedAt           *time.Time     `json:"shippedAt,omitempty"`
	DeliveredAt         *time.Time     `json:"deliveredAt,omitempty"`
	Notes               string         `json:"notes,omitempty"`
	Tags                []string       `json:"tags,omitempty"`
	CustomFields        map[string]any `json:"customFields,omitempty"`
}

// CreateOrderRequest is the order creation schema. Recipient postal code is
// checked against the recipient country.
type CreateOrderRequest struct {
	OrderNumber         string         `json:"orderNumber" validate:"required"`
	RecipientName       string         `json:"recipientName" validate:"required"`
	RecipientCompany    string         `json:"recipientCompany,omitempty"`
	RecipientStreet1    string         `json:"recipientStreet1" validate:"required"`
	RecipientStreet2    string         `json:"recipientStreet2,omitempty"`
	RecipientCity       string         `json:"recipientCity" validate:"required"`
	RecipientState      string         `json:"recipientState" validate:"required"`
	RecipientPostalCode string         `json:"recipientPostalCode" validate:"required"`
	RecipientCountry    string         `json:"recipientCountry" validate:"required"`
	RecipientPhone      string         `json:"recipientPhone,omitempty" validate:"omitempty,phone"`
	RecipientEmail      string         `json:"recipientEmail,omitempty" validate:"omitempty,email"`
	Items               []OrderItem    `json:"items" validate:"required,min=1,dive"`
	Notes               string         `json:"notes,omitempty"`
	Tags                []string       `json:"tags,omitempty"`
	CustomFields        map[string]any `json:"customFields,omitempty"`
}

// Parcel describes the physical package for rating and label purchase.
type Parcel struct {
	Length        float64 `json:"length,omitempty" validate:"omitempty,gt=0"`
	Width         float64 `json:"width,omitempty" validate:"omitempty,gt=0"`
	Height        float64 `json:"height,omitempty" validate:"omitempty,gt=0"`
	Weight        float64 `json:"weight" validate:"required,gt=0"`
	WeightUnit    string  `json:"weightUnit" validate:"required,oneof=lb kg oz g"`
	DimensionUnit string  `json:"dimensionUnit,omitempty" validate:"omitempty,oneof=in cm"`
}

// GetRatesRequest is the rate lookup schema.
type GetRatesRequest struct {
	FromAddress Address        `json:"fromAddress" validate:"required"`
	ToAddress   Address        `json:"toAddress" validate:"required"`
	Package     Parcel         `json:"package" validate:"required"`
	Options     map[string]any `json:"options,omitempty"`
}

// PurchaseLabelRequest is the label purchase schema.
type PurchaseLabelRequest struct {
	OrderID     string         `json:"orderId,omitempty"`
	RateID      string         `json:"rateId" validate:"required"`
	FromAddress Address        `json:"fromAddress" validate:"required"`
	ToAddress   Address        `json:"toAddress" validate:"required"`
	Package     Parcel         `json:"package" validate:"required"`
	Options     map[string]any `json:"options,omitempty"`
}

// ShippingRate is one carrier quote.
type ShippingRate struct {
	ID                 string  `json:"id" validate:"required"`
	Carrier            string  `json:"carrier" validate:"required"`
	Service            string  `json:"service" validate:"required"`
	ServiceName        string  `json:"serviceName,omitempty"`
	Amount             float64 `json:"amount" validate:"gte=0"`
	Currency           string  `json:"currency,omitempty"`
	EstimatedDays      int     `json:"estimatedDays,omitempty"`
	DeliveryDate       string  `json:"deliveryDate,omitempty"`
	GuaranteedDelivery bool    `json:"guaranteedDelivery,omitempty"`
	Residential        bool    `json:"residential,omitempty"`
	SignatureRequired  bool    `json:"signatureRequired,omitempty"`
	RateID             string  `json:"rateId,omitempty"`
}

// ShippingLabel is a purchased label.
type ShippingLabel struct {
	ID                    string     `json:"id,omitempty"`
	OrderID               string     `json:"orderId" validate:"required"`
	Carrier               string     `json:"carrier" validate:"required"`
	Service               string     `json:"service,omitempty"`
	TrackingNumber        string     `json:"trackingNumber" validate:"required"`
	LabelURL              string     `json:"labelUrl,omitempty"`
	Cost                  float64    `json:"cost,omitempty"`
	Currency              string     `json:"currency,omitempty"`
	Status                string     `json:"status,omitempty"`
	Weight                float64    `json:"weight,omitempty"`
	Length                float64    `json:"length,omitempty"`
	Width                 float64    `json:"width,omitempty"`
	Height                float64    `json:"height,omitempty"`
	EstimatedDeliveryDate string     `json:"estimatedDeliveryDate,omitempty"`
	PurchasedAt           *time.Time `json:"purchasedAt,omitempty"`
	RefundedAt            *time.Time `json:"refundedAt,omitempty"`
	DeliveredAt           *time.Time `json:"deliveredAt,omitempty"`
	CreatedAt             *time.Time `json:"createdAt,omitempty"`
	UpdatedAt             *time.Time `json:"updatedAt,omitempty"`
}

// TrackingEvent is one scan in a package's history.
type TrackingEvent struct {
	Timestamp   string `json:"timestamp" validate:"required"`
	Status      string `json:"status" validate:"required"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
}

// TrackingInfo is the tracking state of one package.
type TrackingInfo struct {
	TrackingNumber    string          `json:"trackingNumber" validate:"required"`
	Carrier           string          `json:"carrier" validate:"required"`
	Status            string          `json:"status,omitempty"`
	EstimatedDelivery string          `json:"estimatedDelivery,omitempty"`
	Events            []TrackingEvent `json:"events" validate:"dive"`
	LastUpdate        string          `json:"lastUpdate,omitempty"`
}

// Webhook is a registered event subscription.
type Webhook struct {
	ID              string     `json:"id,omitempty"`
	URL             string     `json:"url" validate:"required,url"`
	Events          []string   `json:"events" validate:"required,min=1"`
	Secret          string     `json:"secret,omitempty"`
	Active          bool       `json:"active"`
	LastTriggeredAt *time.Time `json:"lastTriggeredAt,omitempty"`
	SuccessCount    int        `json:"successCount,omitempty"`
	FailureCount    int        `json:"failureCount,omitempty"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// APIKey is an API credential. Key is only populated on creation.
type APIKey struct {
	ID           string     `json:"id,omitempty"`
	Name         string     `json:"name" validate:"required"`
	Key          string     `json:"key,omitempty"`
	Permissions  []string   `json:"permissions" validate:"required,min=1"`
	IsActive     bool       `json:"isActive,omitempty"`
	LastUsedAt   *time.Time `json:"lastUsedAt,omitempty"`
	RequestCount int        `json:"requestCount,omitempty"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
}

// CarrierAccount links a carrier login to the account.
type CarrierAccount struct {
	ID          string         `json:"id,omitempty"`
	Carrier     string         `json:"carrier" validate:"required"`
	AccountName string         `json:"accountName" validate:"required"`
	IsActive    bool           `json:"isActive"`
	IsDefault   bool           `json:"isDefault,omitempty"`
	Credentials map[string]any `json:"credentials" validate:"required"`
	LastUsedAt  *time.Time     `json:"lastUsedAt,omitempty"`
	CreatedAt   *time.Time     `json:"createdAt,omitempty"`
}

// Plan is a subscription plan.
type Plan struct {
	ID                string     `json:"id,omitempty"`
	Name              string     `json:"name" validate:"required"`
	Price             float64    `json:"price" validate:"gte=0"`
	Currency          string     `json:"currency,omitempty"`
	Interval          string     `json:"interval,omitempty" validate:"omitempty,oneof=MONTHLY YEARLY"`
	Features          []string   `json:"features,omitempty"`
	LabelsPerMonth    int        `json:"labelsPerMonth,omitempty"`
	UsersIncluded     int        `json:"usersIncluded,omitempty"`
	APIRequestsPerDay int        `json:"apiRequestsPerDay,omitempty"`
	IsActive          bool       `json:"isActive,omitempty"`
	CreatedAt         *time.Time `json:"createdAt,omitempty"`
}

// User is the account profile.
type User struct {
	ID              string     `json:"id,omitempty"`
	Email           string     `json:"email" validate:"required,email"`
	Name            string     `json:"name" validate:"required"`
	Role            string     `json:"role,omitempty"`
	Status          string     `json:"status,omitempty"`
	PlanID          string     `json:"planId,omitempty"`
	Plan            *Plan      `json:"plan,omitempty"`
	LabelsUsed      int        `json:"labelsUsed,omitempty"`
	APIRequestsUsed int        `json:"apiRequestsUsed,omitempty"`
	LastLoginAt     *time.Time `json:"lastLoginAt,omitempty"`
	LoginCount      int        `json:"loginCount,omitempty"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}
