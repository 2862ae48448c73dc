// Package monitoring turns a register device into a small web server so
// register state can be inspected, decoded field by field, while a program
// runs.
package monitoring

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Carbrevo/aarch64-cpu/reg"
	"github.com/Carbrevo/aarch64-cpu/simdev"
)

// Monitor serves the state of registered registers over HTTP.
type Monitor struct {
	portNumber int
	registers  []*monitoredRegister
}

type monitoredRegister struct {
	descriptor *reg.Register
	reader     reg.Reader
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterReader registers one register to be monitored through the given
// read capability.
func (m *Monitor) RegisterReader(r *reg.Register, reader reg.Reader) {
	m.registers = append(m.registers, &monitoredRegister{
		descriptor: r,
		reader:     reader,
	})
}

// RegisterDevice registers every readable register of a simulated device.
// The constructed readers are returned so that callers can attach hooks,
// such as an access recorder.
func (m *Monitor) RegisterDevice(d *simdev.Device) []reg.Reader {
	var readers []reg.Reader

	for _, r := range d.Registers() {
		if !r.Access.CanRead() {
			continue
		}

		reader, err := reg.NewReader(r, d)
		if err != nil {
			panic(err)
		}

		m.RegisterReader(r, reader)
		readers = append(readers, reader)
	}

	return readers
}

// StartServer starts the monitor as a web server and returns its URL.
func (m *Monitor) StartServer() string {
	r := mux.NewRouter()
	r.HandleFunc("/api/registers", m.listRegisters)
	r.HandleFunc("/api/register/{name}", m.registerDetails)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring registers with %s\n", url)

	go func() {
		err = http.Serve(listener, r)
		dieOnErr(err)
	}()

	return url
}

type registerState struct {
	Name   string       `json:"name"`
	Width  uint         `json:"width"`
	Access string       `json:"access"`
	Value  string       `json:"value"`
	Fields []fieldState `json:"fields"`
}

type fieldState struct {
	Name     string `json:"name"`
	Offset   uint   `json:"offset"`
	Width    uint   `json:"width"`
	Raw      string `json:"raw"`
	Meaning  string `json:"meaning,omitempty"`
	Reserved bool   `json:"reserved,omitempty"`
}

func (m *Monitor) listRegisters(w http.ResponseWriter, _ *http.Request) {
	names := make([]string, 0, len(m.registers))
	for _, mr := range m.registers {
		names = append(names, mr.descriptor.Name)
	}

	writeJSON(w, names)
}

func (m *Monitor) registerDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	mr := m.findRegister(name)
	if mr == nil {
		http.Error(w, fmt.Sprintf("register %s is not monitored", name),
			http.StatusNotFound)
		return
	}

	writeJSON(w, m.stateOf(mr))
}

func (m *Monitor) findRegister(name string) *monitoredRegister {
	for _, mr := range m.registers {
		if mr.descriptor.Name == name {
			return mr
		}
	}

	return nil
}

func (m *Monitor) stateOf(mr *monitoredRegister) registerState {
	raw := mr.reader.Read()

	state := registerState{
		Name:   mr.descriptor.Name,
		Width:  mr.descriptor.Width,
		Access: mr.descriptor.Access.String(),
		Value:  fmt.Sprintf("%#x", uint64(raw)),
		Fields: []fieldState{},
	}

	for _, fv := range mr.descriptor.DecodeAll(raw) {
		f, _ := mr.descriptor.FieldByName(fv.Field)

		state.Fields = append(state.Fields, fieldState{
			Name:     fv.Field,
			Offset:   f.Offset,
			Width:    f.Width,
			Raw:      fmt.Sprintf("%#x", fv.Raw),
			Meaning:  fv.Name,
			Reserved: fv.Reserved,
		})
	}

	return state
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(w).Encode(v)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		panic(err)
	}
}
