package store

// Key names shared by both tiers. They match the names used by the booking
// site so existing stored data stays readable.
const (
	KeyUsers           = "registeredUsers"
	KeyCurrentSession  = "currentSession"
	KeyPurchases       = "purchases"
	KeyTips            = "travelTips"
	KeySelectedPackage = "selectedPackage"
)
