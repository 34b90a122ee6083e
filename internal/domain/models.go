// Reference persistence schema for the agrifinance marketplace.
//
// These types describe the relational model the platform will persist once
// the database-backed collaborator lands: users and their roles, products
// and market prices, listings and transactions, transport services and
// bookings, financial services and applications, plus weather data,
// notifications, and assistant chat logs.
//
// The schema is migrated at startup (see repo.AutoMigrate) so the database
// is ready for the persistence layer, but the action handlers themselves
// never write these tables: every marketplace, financial, and transport
// operation is currently simulated end to end.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Role values for User.Role.
const (
	RoleFarmer      = "farmer"
	RoleBuyer       = "buyer"
	RoleTransporter = "transporter"
	RoleAdmin       = "admin"
)

// User is a registered participant: farmer, buyer, transporter, or admin.
type User struct {
	ID           string         `json:"id"            gorm:"type:char(36);primaryKey"`
	Username     string         `json:"username"      gorm:"type:varchar(150);not null;uniqueIndex"`
	Role         string         `json:"role"          gorm:"type:varchar(20);not null;default:'farmer';check:role IN ('farmer','buyer','transporter','admin')"`
	PhoneNumber  string         `json:"phone_number"  gorm:"type:varchar(20)"`
	Location     string         `json:"location"      gorm:"type:varchar(100)"`
	Verified     bool           `json:"verified"      gorm:"not null;default:false"`
	ProfileImage string         `json:"profile_image" gorm:"type:varchar(255)"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-"             gorm:"index"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Product is a catalogue entry for a crop or good traded on the platform.
type Product struct {
	ID          string    `json:"id"          gorm:"type:char(36);primaryKey"`
	Name        string    `json:"name"        gorm:"type:varchar(100);not null"`
	Description string    `json:"description" gorm:"type:text"`
	Category    string    `json:"category"    gorm:"type:varchar(50);not null"`
	Unit        string    `json:"unit"        gorm:"type:varchar(20);not null;default:'kg'"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for Product.
func (Product) TableName() string { return "products" }

// MarketPrice records the observed price of a product at a location on a date.
type MarketPrice struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	ProductID string    `json:"product_id" gorm:"type:char(36);not null;index"`
	Price     float64   `json:"price"      gorm:"type:decimal(10,2);not null"`
	Unit      string    `json:"unit"       gorm:"type:varchar(20);not null;default:'kg'"`
	Location  string    `json:"location"   gorm:"type:varchar(100);not null"`
	Date      time.Time `json:"date"       gorm:"type:date;not null;index"`

	Product Product `json:"-" gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for MarketPrice.
func (MarketPrice) TableName() string { return "market_prices" }

// Listing status values.
const (
	ListingActive  = "active"
	ListingSold    = "sold"
	ListingExpired = "expired"
	ListingDraft   = "draft"
)

// ProductListing is an offer by a seller: a quantity of a product at a
// per-unit price. A listing belongs to one seller and has many images.
type ProductListing struct {
	ID           string         `json:"id"             gorm:"type:char(36);primaryKey"`
	SellerID     string         `json:"seller_id"      gorm:"type:char(36);not null;index:idx_seller_listings"`
	ProductID    string         `json:"product_id"     gorm:"type:char(36);not null;index"`
	Quantity     float64        `json:"quantity"       gorm:"type:decimal(10,2);not null"`
	Unit         string         `json:"unit"           gorm:"type:varchar(20);not null;default:'kg'"`
	PricePerUnit float64        `json:"price_per_unit" gorm:"type:decimal(10,2);not null"`
	Description  string         `json:"description"    gorm:"type:text"`
	Location     string         `json:"location"       gorm:"type:varchar(100);not null"`
	Status       string         `json:"status"         gorm:"type:varchar(20);not null;default:'active';check:status IN ('active','sold','expired','draft')"`
	CreatedAt    time.Time      `json:"created_at"     gorm:"index"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-"              gorm:"index"`

	Seller  User           `json:"-" gorm:"foreignKey:SellerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Product Product        `json:"-" gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Images  []ProductImage `json:"images,omitempty" gorm:"foreignKey:ListingID"`
}

// TableName returns the database table name for ProductListing.
func (ProductListing) TableName() string { return "product_listings" }

// ProductImage is a photo attached to a listing.
type ProductImage struct {
	ID        string `json:"id"         gorm:"type:char(36);primaryKey"`
	ListingID string `json:"listing_id" gorm:"type:char(36);not null;index"`
	Image     string `json:"image"      gorm:"type:varchar(255);not null"`

	Listing ProductListing `json:"-" gorm:"foreignKey:ListingID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for ProductImage.
func (ProductImage) TableName() string { return "product_images" }

// Transaction status values.
const (
	TransactionPending   = "pending"
	TransactionCompleted = "completed"
	TransactionCancelled = "cancelled"
)

// Transaction records a purchase of a listing: one listing, one buyer,
// one seller, quantity and totals captured at time of sale.
type Transaction struct {
	ID          string         `json:"id"           gorm:"type:char(36);primaryKey"`
	ListingID   string         `json:"listing_id"   gorm:"type:char(36);not null;index"`
	BuyerID     string         `json:"buyer_id"     gorm:"type:char(36);not null;index"`
	SellerID    string         `json:"seller_id"    gorm:"type:char(36);not null;index"`
	Quantity    float64        `json:"quantity"     gorm:"type:decimal(10,2);not null"`
	UnitPrice   float64        `json:"unit_price"   gorm:"type:decimal(10,2);not null"`
	TotalAmount float64        `json:"total_amount" gorm:"type:decimal(12,2);not null"`
	Status      string         `json:"status"       gorm:"type:varchar(20);not null;default:'pending';check:status IN ('pending','completed','cancelled')"`
	CreatedAt   time.Time      `json:"created_at"   gorm:"index"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	DeletedAt   gorm.DeletedAt `json:"-"            gorm:"index"`

	Listing ProductListing `json:"-" gorm:"foreignKey:ListingID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Buyer   User           `json:"-" gorm:"foreignKey:BuyerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Seller  User           `json:"-" gorm:"foreignKey:SellerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Transaction.
func (Transaction) TableName() string { return "transactions" }

// WeatherData is a daily weather observation for a location, with an
// optional farming tip shown alongside it.
type WeatherData struct {
	ID          string    `json:"id"          gorm:"type:char(36);primaryKey"`
	Location    string    `json:"location"    gorm:"type:varchar(100);not null;index"`
	Temperature float64   `json:"temperature" gorm:"type:decimal(5,2);not null"`
	Condition   string    `json:"condition"   gorm:"type:varchar(50);not null"`
	Humidity    int       `json:"humidity"    gorm:"not null"`
	WindSpeed   float64   `json:"wind_speed"  gorm:"type:decimal(5,2);not null"`
	Date        time.Time `json:"date"        gorm:"type:date;not null;index"`
	FarmingTip  string    `json:"farming_tip" gorm:"type:text"`
}

// TableName returns the database table name for WeatherData.
func (WeatherData) TableName() string { return "weather_data" }

// Notification is a message delivered to a user inside the application.
type Notification struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"user_id"    gorm:"type:char(36);not null;index"`
	Title     string    `json:"title"      gorm:"type:varchar(100);not null"`
	Message   string    `json:"message"    gorm:"type:text;not null"`
	IsRead    bool      `json:"is_read"    gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Notification.
func (Notification) TableName() string { return "notifications" }

// Transport service status values.
const (
	TransportAvailable = "available"
	TransportBooked    = "booked"
	TransportInTransit = "in_transit"
	TransportCompleted = "completed"
)

// TransportService is a vehicle offered by a transporter.
type TransportService struct {
	ID              string    `json:"id"               gorm:"type:char(36);primaryKey"`
	ProviderID      string    `json:"provider_id"      gorm:"type:char(36);not null;index"`
	VehicleType     string    `json:"vehicle_type"     gorm:"type:varchar(50);not null"`
	Capacity        float64   `json:"capacity"         gorm:"type:decimal(10,2);not null"`
	CapacityUnit    string    `json:"capacity_unit"    gorm:"type:varchar(20);not null;default:'kg'"`
	PricePerKm      float64   `json:"price_per_km"     gorm:"type:decimal(8,2);not null"`
	CurrentLocation string    `json:"current_location" gorm:"type:varchar(100);not null"`
	AvailableFrom   time.Time `json:"available_from"   gorm:"type:date;not null"`
	Status          string    `json:"status"           gorm:"type:varchar(20);not null;default:'available';check:status IN ('available','booked','in_transit','completed')"`

	Provider User `json:"-" gorm:"foreignKey:ProviderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for TransportService.
func (TransportService) TableName() string { return "transport_services" }

// Transport booking status values.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingInTransit = "in_transit"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// TransportBooking is a request to move cargo with a transport service.
type TransportBooking struct {
	ID               string    `json:"id"                gorm:"type:char(36);primaryKey"`
	ServiceID        string    `json:"service_id"        gorm:"type:char(36);not null;index"`
	UserID           string    `json:"user_id"           gorm:"type:char(36);not null;index"`
	PickupLocation   string    `json:"pickup_location"   gorm:"type:varchar(100);not null"`
	DeliveryLocation string    `json:"delivery_location" gorm:"type:varchar(100);not null"`
	DistanceKm       float64   `json:"distance_km"       gorm:"type:decimal(8,2);not null"`
	CargoDescription string    `json:"cargo_description" gorm:"type:text;not null"`
	CargoWeight      float64   `json:"cargo_weight"      gorm:"type:decimal(10,2);not null"`
	PickupDate       time.Time `json:"pickup_date"       gorm:"type:date;not null"`
	Status           string    `json:"status"            gorm:"type:varchar(20);not null;default:'pending';check:status IN ('pending','confirmed','in_transit','completed','cancelled')"`
	TotalCost        float64   `json:"total_cost"        gorm:"type:decimal(10,2);not null"`
	CreatedAt        time.Time `json:"created_at"`

	Service TransportService `json:"-" gorm:"foreignKey:ServiceID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User    User             `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for TransportBooking.
func (TransportBooking) TableName() string { return "transport_bookings" }

// Financial service type values.
const (
	ServiceLoan      = "loan"
	ServiceInsurance = "insurance"
	ServiceSavings   = "savings"
)

// FinancialService is a loan, insurance, or savings product offered by a
// financial-service provider.
type FinancialService struct {
	ID           string   `json:"id"            gorm:"type:char(36);primaryKey"`
	Name         string   `json:"name"          gorm:"type:varchar(100);not null"`
	Provider     string   `json:"provider"      gorm:"type:varchar(100);not null"`
	ServiceType  string   `json:"service_type"  gorm:"type:varchar(20);not null;check:service_type IN ('loan','insurance','savings')"`
	Description  string   `json:"description"   gorm:"type:text;not null"`
	Requirements string   `json:"requirements"  gorm:"type:text;not null"`
	InterestRate *float64 `json:"interest_rate,omitempty" gorm:"type:decimal(5,2)"`
	MinAmount    *float64 `json:"min_amount,omitempty"    gorm:"type:decimal(12,2)"`
	MaxAmount    *float64 `json:"max_amount,omitempty"    gorm:"type:decimal(12,2)"`
}

// TableName returns the database table name for FinancialService.
func (FinancialService) TableName() string { return "financial_services" }

// Application status values.
const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

// FinancialApplication is a user's application for a financial service.
type FinancialApplication struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"user_id"    gorm:"type:char(36);not null;index"`
	ServiceID string    `json:"service_id" gorm:"type:char(36);not null;index"`
	Amount    float64   `json:"amount"     gorm:"type:decimal(12,2);not null"`
	Purpose   string    `json:"purpose"    gorm:"type:text;not null"`
	Status    string    `json:"status"     gorm:"type:varchar(20);not null;default:'pending';check:status IN ('pending','approved','rejected')"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	User    User             `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Service FinancialService `json:"-" gorm:"foreignKey:ServiceID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for FinancialApplication.
func (FinancialApplication) TableName() string { return "financial_applications" }

// AIAssistantChat is one exchange with the farming assistant.
type AIAssistantChat struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"user_id"    gorm:"type:char(36);not null;index"`
	Message   string    `json:"message"    gorm:"type:text;not null"`
	Response  string    `json:"response"   gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for AIAssistantChat.
func (AIAssistantChat) TableName() string { return "ai_assistant_chats" }
