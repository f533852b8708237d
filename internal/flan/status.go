// Package flan defines the wire surface of the FLAN protocol (Flan Layered
// Access Network): the closed set of outcome codes, the response envelope,
// and the packet PDU exchanged during preheat and order submission.
package flan

// Status is one outcome code of the protocol. Codes align with the HTTP
// classes, so a Status doubles as the HTTP status to write.
type Status struct {
	Code        int    `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var (
	// 2xx success
	StatusFlanPerfect = Status{200, "Flan Perfect", "Total success, ideal texture"}
	StatusFlanCreated = Status{201, "Flan Created", "Resource created successfully"}
	StatusEmptyMold   = Status{204, "Empty Mold", "Success but no content"}

	// 3xx redirections
	StatusBakeryMoved  = Status{301, "Bakery Moved", "Permanent redirection"}
	StatusOvenOccupied = Status{302, "Oven Occupied", "Temporary redirection"}

	// 4xx client errors
	StatusBadRecipe      = Status{400, "Bad Recipe", "Malformed request"}
	StatusKitchenPrivate = Status{401, "Kitchen Off-Limits", "Authentication required"}
	StatusSecretRecipe   = Status{403, "Secret Recipe", "Access denied"}
	StatusFlanNotFound   = Status{404, "Flan Not Found", "Resource not found"}
	StatusBakingTimeout  = Status{408, "Baking Timeout", "Deadline exceeded"}
	StatusFlanTooBig     = Status{413, "Flan Too Big", "Payload too large"}
	StatusTeapot         = Status{418, "I Am A Teapot", "RFC 2324 easter egg"}
	StatusTooManyOrders  = Status{429, "Too Many Orders", "Rate limiting"}

	// 5xx server errors
	StatusOvenBroken    = Status{500, "Oven Broken", "Internal server error"}
	StatusWrongOven     = Status{502, "Wrong Oven", "Bad gateway"}
	StatusKitchenClosed = Status{503, "Kitchen Closed", "Service unavailable"}
	StatusOvenTimeout   = Status{504, "Oven Timeout", "Gateway timeout"}
)

// All returns every defined status in ascending code order.
func All() []Status {
	return []Status{
		StatusFlanPerfect,
		StatusFlanCreated,
		StatusEmptyMold,
		StatusBakeryMoved,
		StatusOvenOccupied,
		StatusBadRecipe,
		StatusKitchenPrivate,
		StatusSecretRecipe,
		StatusFlanNotFound,
		StatusBakingTimeout,
		StatusFlanTooBig,
		StatusTeapot,
		StatusTooManyOrders,
		StatusOvenBroken,
		StatusWrongOven,
		StatusKitchenClosed,
		StatusOvenTimeout,
	}
}
