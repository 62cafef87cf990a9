package app

// View identifies a screen in the merchant portal. Navigation is in-app
// only; there are no deep-linkable routes.
type View string

const (
	ViewHome         View = "home"
	ViewAuth         View = "auth"
	ViewSubscription View = "subscription"
	ViewDashboard    View = "dashboard"
	ViewMarketplace  View = "marketplace"
	ViewQuotes       View = "quotes"
	ViewOrders       View = "orders"
	ViewAITools      View = "ai_tools"
	ViewCart         View = "cart"
	ViewProfile      View = "profile"
)

var knownViews = map[View]bool{
	ViewHome: true, ViewAuth: true, ViewSubscription: true, ViewDashboard: true,
	ViewMarketplace: true, ViewQuotes: true, ViewOrders: true, ViewAITools: true,
	ViewCart: true, ViewProfile: true,
}

func ValidView(v View) bool { return knownViews[v] }
