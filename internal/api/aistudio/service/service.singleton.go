package aistudiosvc

import "sync"

var (
	promptConfigOnce sync.Once
	promptConfigSvc  *PromptConfigService
	promptConfigErr  error
)

// GetPromptConfigService devuelve el singleton del service de configuración.
// Compartirlo entre handlers y services de artefactos hace que una
// invalidación del caché sea visible para todos.
func GetPromptConfigService() (*PromptConfigService, error) {
	promptConfigOnce.Do(func() {
		promptConfigSvc, promptConfigErr = NewPromptConfigService()
	})
	return promptConfigSvc, promptConfigErr
}

// GetPromptAssembler devuelve un ensamblador sobre el singleton de
// configuración.
func GetPromptAssembler() (*PromptAssembler, error) {
	config, err := GetPromptConfigService()
	if err != nil {
		return nil, err
	}
	return NewPromptAssembler(config), nil
}
