package domain

type LoginRequest struct {
	AuthKey     string `json:"authKey"`
	LoginServer string `json:"loginServer"`
}

type StatusResponse struct {
	Ok     bool `json:"ok"`
	Status any  `json:"status"`
}

// RawStatus wraps tool output that could not be parsed as JSON.
type RawStatus struct {
	Raw string `json:"raw"`
}

type LoginResponse struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message"`
	Stdout  string `json:"stdout"`
	Command string `json:"command"`
}

type LogoutResponse struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message"`
	Stdout  string `json:"stdout"`
}
