// Package persona supplies the fixed agent policy: the system instruction,
// the canned user-facing strings and the submit_order tool schema. The
// instruction text is the product's actual logic; the code around it only
// delivers it unchanged to every model invocation.
package persona

import (
	"fmt"
	"os"

	"github.com/tmc/langchaingo/llms"
	"gopkg.in/yaml.v3"
)

// Persona holds all policy data. Constructed once at startup and passed to
// each component; never mutated afterwards.
type Persona struct {
	Name        string `yaml:"name"`
	Instruction string `yaml:"instruction"`

	// Canned user-facing strings. Internal errors are never shown verbatim;
	// they are always mapped to one of these.
	Greeting      string `yaml:"greeting"`
	ServerBusy    string `yaml:"server_busy"`
	ConnectFailed string `yaml:"connect_failed"`
	SystemError   string `yaml:"system_error"`
	ConfigNeeded  string `yaml:"config_needed"`

	WhatsAppNumber string  `yaml:"whatsapp_number"`
	Model          string  `yaml:"model"`
	Temperature    float64 `yaml:"temperature"`
}

// Default returns the built-in Muhafiz persona.
func Default() Persona {
	return Persona{
		Name:        "Muhafiz Hamza",
		Instruction: systemInstruction,

		Greeting:      "Selam alejkum i dobro nam došli. Kako ste danas? Je li vas umorio dunjaluk?",
		ServerBusy:    "Mašallah, velika je gužva. Možete li mi to ponoviti, molim Vas?",
		ConnectFailed: "⚠️ Oprostite, trenutno imam poteškoća sa povezivanjem na server. Molim pokušajte ponovo malo kasnije.",
		SystemError:   "Došlo je do greške u sistemu. Molim osvježite stranicu.",
		ConfigNeeded: "⚠️ KONFIGURACIJA POTREBNA:\n\nWidget nije povezan sa backendom.\n\n" +
			"Postavite MUHAFIZ_BACKEND_URL na adresu vašeg servera (npr. https://moj-projekat.vercel.app).",

		WhatsAppNumber: "38761000000",
		Model:          "gemini-2.5-flash",
		Temperature:    0.7,
	}
}

// Load returns the default persona overridden by the YAML file at path.
// Keys absent from the file keep their defaults. An empty path is the
// default persona; an unreadable or malformed file is an error.
func Load(path string) (Persona, error) {
	p := Default()
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Persona{}, fmt.Errorf("read persona file: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Persona{}, fmt.Errorf("parse persona file: %w", err)
	}
	return p, nil
}

// OrderTool is the single function declaration advertised to the model.
// The model calls it once the customer has provided name, address and phone.
func (p Persona) OrderTool() llms.Tool {
	return llms.Tool{
		Type: "function",
		Function: &llms.FunctionDefinition{
			Name:        "submit_order",
			Description: "Call this function when the user has provided their Name, Address, and Phone number to place an order.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{
						"type":        "string",
						"description": "Customer's full name",
					},
					"address": map[string]any{
						"type":        "string",
						"description": "Full delivery address",
					},
					"phone": map[string]any{
						"type":        "string",
						"description": "Phone number",
					},
					"paymentMethod": map[string]any{
						"type":        "string",
						"description": "Payment method, usually 'pouzećem'",
					},
				},
				"required": []string{"name", "address", "phone"},
			},
		},
	}
}
