package models

// OrderSubmission is the untrusted checkout payload submitted by the
// storefront client. It lives only for the duration of one request; nothing
// in it is persisted without going through validation and the pricing check.
// Unknown JSON fields are ignored on decode.
type OrderSubmission struct {
	CustomerName    string               `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerPhone   string               `json:"customer_phone" validate:"required,bd_phone"`
	CustomerEmail   string               `json:"customer_email" validate:"omitempty,email"`
	ShippingAddress string               `json:"shipping_address" validate:"required,min=10,max=500"`
	City            string               `json:"city" validate:"required,min=2,max=100"`
	Area            string               `json:"area" validate:"max=100"`
	Notes           string               `json:"notes" validate:"max=1000"`
	PaymentMethod   string               `json:"payment_method" validate:"required,oneof=cod bkash nagad rocket bank"`
	TransactionID   string               `json:"transaction_id" validate:"max=100"`
	Subtotal        float64              `json:"subtotal" validate:"gt=0,lte=10000000"`
	Discount        float64              `json:"discount" validate:"gte=0,lte=10000000"`
	CouponCode      string               `json:"coupon_code" validate:"max=50"`
	ShippingCost    float64              `json:"shipping_cost" validate:"gte=0,lte=10000"`
	Total           float64              `json:"total" validate:"gt=0,lte=10000000"`
	Items           []CartLineSubmission `json:"items" validate:"min=1,max=100,dive"`
}

// CartLineSubmission is one cart line as submitted by the client. SalePrice
// is a pointer so "absent" and "zero" are distinguishable; when present it is
// the price actually charged.
type CartLineSubmission struct {
	ID        string   `json:"id" validate:"required,uuid"`
	NameBN    string   `json:"name_bn" validate:"required,min=1,max=200"`
	Quantity  int      `json:"quantity" validate:"min=1,max=1000"`
	Price     float64  `json:"price" validate:"gt=0"`
	SalePrice *float64 `json:"sale_price" validate:"omitempty,gt=0"`
}
