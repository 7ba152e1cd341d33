package internal

import (
	"os"
	"strconv"

	"github.com/tourguide/landmarks/pkg/landmarks/constants"
	"github.com/veandco/go-sdl2/sdl"
)

const axisThreshold = 16000

// Event is a virtual button transition produced from an SDL event.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

// InputProcessor maps keyboard, controller, stick and hat input onto
// virtual buttons.
type InputProcessor struct {
	flipFaceButtons bool
	axisHeld        map[uint8]constants.VirtualButton
	hatHeld         constants.VirtualButton
	controllers     map[sdl.JoystickID]*sdl.GameController
}

var (
	inputProcessor  *InputProcessor
	flipFaceButtons bool
)

// SetFlipFaceButtons selects direct face button mapping (A=A, B=B) instead of
// the Nintendo-style swap most handheld firmwares report.
func SetFlipFaceButtons(flip bool) {
	flipFaceButtons = flip
	if inputProcessor != nil {
		inputProcessor.flipFaceButtons = flip
	}
}

func NewInputProcessor(flip bool) *InputProcessor {
	return &InputProcessor{
		flipFaceButtons: flip,
		axisHeld:        make(map[uint8]constants.VirtualButton),
		controllers:     make(map[sdl.JoystickID]*sdl.GameController),
	}
}

// InitInputProcessor creates the shared processor and opens every attached
// game controller.
func InitInputProcessor() {
	if v := os.Getenv(constants.FlipFaceButtonsEnvVar); v != "" {
		if flip, err := strconv.ParseBool(v); err == nil {
			flipFaceButtons = flip
		}
	}

	inputProcessor = NewInputProcessor(flipFaceButtons)

	for i := 0; i < sdl.NumJoysticks(); i++ {
		inputProcessor.openController(i)
	}
}

func GetInputProcessor() *InputProcessor {
	if inputProcessor == nil {
		inputProcessor = NewInputProcessor(flipFaceButtons)
	}
	return inputProcessor
}

func (p *InputProcessor) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		GetInternalLogger().Warn("Failed to open game controller", "index", index, "error", sdl.GetError())
		return
	}
	id := controller.Joystick().InstanceID()
	p.controllers[id] = controller
	GetInternalLogger().Debug("Opened game controller", "index", index, "name", controller.Name())
}

// CloseAllControllers releases every controller opened by the processor.
func CloseAllControllers() {
	if inputProcessor == nil {
		return
	}
	for id, controller := range inputProcessor.controllers {
		controller.Close()
		delete(inputProcessor.controllers, id)
	}
}

// ProcessSDLEvent converts event into a virtual button transition.
// Returns nil for events that do not map to a button.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		return p.emit(keyToButton(e.Keysym.Sym), e.State == sdl.PRESSED)

	case *sdl.ControllerButtonEvent:
		return p.emit(controllerButtonToButton(e.Button, p.flipFaceButtons), e.State == sdl.PRESSED)

	case *sdl.ControllerAxisEvent:
		return p.processAxis(e.Axis, e.Value)

	case *sdl.JoyHatEvent:
		return p.processHat(e.Value)

	case *sdl.ControllerDeviceEvent:
		if e.Type == sdl.CONTROLLERDEVICEADDED {
			p.openController(int(e.Which))
		} else if e.Type == sdl.CONTROLLERDEVICEREMOVED {
			if controller, ok := p.controllers[e.Which]; ok {
				controller.Close()
				delete(p.controllers, e.Which)
			}
		}
	}
	return nil
}

func (p *InputProcessor) emit(button constants.VirtualButton, pressed bool) *Event {
	if button == constants.VirtualButtonUnassigned {
		return nil
	}
	return &Event{Button: button, Pressed: pressed}
}

func (p *InputProcessor) processAxis(axis uint8, value int16) *Event {
	var button constants.VirtualButton
	switch axis {
	case sdl.CONTROLLER_AXIS_LEFTY:
		if value < -axisThreshold {
			button = constants.VirtualButtonUp
		} else if value > axisThreshold {
			button = constants.VirtualButtonDown
		}
	case sdl.CONTROLLER_AXIS_LEFTX:
		if value < -axisThreshold {
			button = constants.VirtualButtonLeft
		} else if value > axisThreshold {
			button = constants.VirtualButtonRight
		}
	default:
		return nil
	}

	held := p.axisHeld[axis]
	switch {
	case button == held:
		return nil
	case button == constants.VirtualButtonUnassigned:
		delete(p.axisHeld, axis)
		return &Event{Button: held, Pressed: false}
	default:
		p.axisHeld[axis] = button
		return &Event{Button: button, Pressed: true}
	}
}

func (p *InputProcessor) processHat(value uint8) *Event {
	var button constants.VirtualButton
	switch {
	case value&sdl.HAT_UP != 0:
		button = constants.VirtualButtonUp
	case value&sdl.HAT_DOWN != 0:
		button = constants.VirtualButtonDown
	case value&sdl.HAT_LEFT != 0:
		button = constants.VirtualButtonLeft
	case value&sdl.HAT_RIGHT != 0:
		button = constants.VirtualButtonRight
	}

	held := p.hatHeld
	p.hatHeld = button
	switch {
	case button == held:
		return nil
	case button == constants.VirtualButtonUnassigned:
		return &Event{Button: held, Pressed: false}
	default:
		return &Event{Button: button, Pressed: true}
	}
}

func keyToButton(key sdl.Keycode) constants.VirtualButton {
	switch key {
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN:
		return constants.VirtualButtonDown
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight
	case sdl.K_RETURN, sdl.K_KP_ENTER, sdl.K_a:
		return constants.VirtualButtonA
	case sdl.K_ESCAPE, sdl.K_BACKSPACE, sdl.K_b:
		return constants.VirtualButtonB
	case sdl.K_x:
		return constants.VirtualButtonX
	case sdl.K_y:
		return constants.VirtualButtonY
	case sdl.K_PAGEUP:
		return constants.VirtualButtonL1
	case sdl.K_PAGEDOWN:
		return constants.VirtualButtonR1
	case sdl.K_SPACE:
		return constants.VirtualButtonStart
	case sdl.K_TAB:
		return constants.VirtualButtonSelect
	case sdl.K_m:
		return constants.VirtualButtonMenu
	}
	return constants.VirtualButtonUnassigned
}

func controllerButtonToButton(button uint8, flip bool) constants.VirtualButton {
	switch button {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case sdl.CONTROLLER_BUTTON_A:
		if flip {
			return constants.VirtualButtonA
		}
		return constants.VirtualButtonB
	case sdl.CONTROLLER_BUTTON_B:
		if flip {
			return constants.VirtualButtonB
		}
		return constants.VirtualButtonA
	case sdl.CONTROLLER_BUTTON_X:
		if flip {
			return constants.VirtualButtonX
		}
		return constants.VirtualButtonY
	case sdl.CONTROLLER_BUTTON_Y:
		if flip {
			return constants.VirtualButtonY
		}
		return constants.VirtualButtonX
	case sdl.CONTROLLER_BUTTON_LEFTSHOULDER:
		return constants.VirtualButtonL1
	case sdl.CONTROLLER_BUTTON_RIGHTSHOULDER:
		return constants.VirtualButtonR1
	case sdl.CONTROLLER_BUTTON_START:
		return constants.VirtualButtonStart
	case sdl.CONTROLLER_BUTTON_BACK:
		return constants.VirtualButtonSelect
	case sdl.CONTROLLER_BUTTON_GUIDE:
		return constants.VirtualButtonMenu
	}
	return constants.VirtualButtonUnassigned
}
