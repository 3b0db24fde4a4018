package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/justsurfingit/breakout-talents/internal/voice"
)

type ApplyData struct {
	Form FormView
	Role string
}

func ApplyPage(d ApplyData) g.Node {
	return Main(
		Class("relative min-h-screen"),
		Div(
			Class("container mx-auto px-4 py-12 max-w-md"),
			A(Href("/"), Class("text-muted-foreground mb-8 inline-block"), g.Text("← Back")),
			H1(Class("text-3xl font-bold mb-2"), g.Text("Complete Your Application")),
			g.If(d.Role != "", P(Class("text-muted-foreground mb-8"),
				g.Text("Applying for "), Strong(g.Text(d.Role)),
			)),
			g.If(d.Form.Errors.Message("role") != "", P(
				Class("text-sm text-destructive mb-4"), Role("alert"), Data("error", string(d.Form.Errors.Kind("role"))),
				g.Text(d.Form.Errors.Message("role")+". Pick a role on the "), A(Href("/"), Class("underline"), g.Text("home page")), g.Text("."),
			)),
			d.Form.render(
				Div(
					Class("rounded-lg border border-border bg-card/30 p-4 text-sm text-muted-foreground"),
					g.Text("Optional: after submitting you can have a voice conversation to tell us more about your experience and goals."),
				),
			),
		),
	)
}

type VoiceData struct {
	FirstName  string
	Role       string
	Enabled    bool
	Status     voice.Status
	IsSpeaking bool
	CanStart   bool
	CanStop    bool
	Handle     *voice.Handle
}

// VoicePage is step two of the apply flow. The start button is disabled
// while a session is connecting or connected, the stop button while none is.
func VoicePage(d VoiceData) g.Node {
	mode := "listening"
	if d.IsSpeaking {
		mode = "speaking"
	}
	return Main(
		Class("relative min-h-screen"),
		Div(
			Class("container mx-auto px-4 py-12 max-w-md text-center space-y-6"),
			H1(Class("text-3xl font-bold"), g.Textf("Thanks%s! Application received.", greeting(d.FirstName))),
			P(Class("text-muted-foreground"), g.Text("Optional: have a voice conversation to tell us more about your experience and goals.")),
			g.If(!d.Enabled, P(Class("text-sm text-muted-foreground"), ID("voice-disabled"), g.Text("Voice chat is not available right now."))),
			g.If(d.Enabled, Div(
				ID("voice-widget"),
				Class("space-y-4"),
				Data("status", string(d.Status)),
				g.If(d.Handle != nil, g.Group([]g.Node{
					Data("signed-url", handleURL(d.Handle)),
					Data("first-name", d.FirstName),
					Data("role", d.Role),
				})),
				Div(
					Class("flex gap-4 justify-center"),
					g.El("form",
						ID("voice-start"),
						Method("post"),
						Action("/apply/voice/start"),
						Input(Type("hidden"), Name("mic_granted"), Value("false")),
						Button(Type("submit"), Class("bg-primary text-primary-foreground rounded-md px-6 py-3"),
							g.If(!d.CanStart, Disabled()),
							g.Text(startLabel(d.Status)),
						),
					),
					g.El("form",
						ID("voice-stop"),
						Method("post"),
						Action("/apply/voice/stop"),
						Button(Type("submit"), Class("bg-destructive text-destructive-foreground rounded-md px-6 py-3"),
							g.If(!d.CanStop, Disabled()),
							g.Text("Stop Conversation"),
						),
					),
				),
				Div(
					Class("text-sm text-muted-foreground"),
					P(ID("voice-status"), g.Textf("Status: %s", d.Status)),
					P(ID("voice-mode"), g.Textf("Agent is %s", mode)),
				),
				Script(Type("module"), g.Raw(voiceScript)),
			)),
			A(Href("/"), Class("inline-block text-primary underline"), g.Text("Back to home")),
		),
	)
}

func greeting(firstName string) string {
	if firstName == "" {
		return ""
	}
	return ", " + firstName
}

func handleURL(h *voice.Handle) string {
	if h == nil {
		return ""
	}
	return h.SignedURL
}

func startLabel(s voice.Status) string {
	if s == voice.StatusConnecting {
		return "Connecting..."
	}
	return "Start Conversation"
}

// voiceScript asks for the microphone before posting the start form, opens
// the conversation once a signed URL is present and mirrors SDK status and
// mode changes into the page and back to the server. Posting the stop form
// unloads the page, which closes the websocket.
const voiceScript = `
import { Conversation } from "https://cdn.jsdelivr.net/npm/@elevenlabs/client/+esm";

const widget = document.getElementById("voice-widget");
const start = document.getElementById("voice-start");
const stop = document.getElementById("voice-stop");
const events = "/api/v1/voice/events";
let conversation = null;

const show = (status, speaking) => {
  widget.dataset.status = status;
  document.getElementById("voice-status").textContent = "Status: " + status;
  document.getElementById("voice-mode").textContent = "Agent is " + (speaking ? "speaking" : "listening");
  start.querySelector("button").disabled = status !== "disconnected";
  stop.querySelector("button").disabled = status !== "connected";
};

const report = (status, speaking) => {
  show(status, speaking);
  return fetch(events, {
    method: "POST",
    headers: { "Content-Type": "application/json" },
    credentials: "same-origin",
    body: JSON.stringify({ status, is_speaking: speaking }),
  });
};

start.addEventListener("submit", async (e) => {
  e.preventDefault();
  try {
    await navigator.mediaDevices.getUserMedia({ audio: true });
    start.elements.mic_granted.value = "true";
  } catch {
    start.elements.mic_granted.value = "false";
  }
  start.submit();
});

window.addEventListener("pagehide", () => {
  if (conversation || widget.dataset.status !== "disconnected") {
    navigator.sendBeacon(events, new Blob([JSON.stringify({ status: "disconnected" })], { type: "application/json" }));
  }
});

if (widget.dataset.signedUrl && widget.dataset.status === "connecting") {
  try {
    conversation = await Conversation.startSession({
      signedUrl: widget.dataset.signedUrl,
      connectionType: "websocket",
      dynamicVariables: { firstName: widget.dataset.firstName, role: widget.dataset.role },
      onStatusChange: ({ status }) => report(status, false),
      onModeChange: ({ mode }) => report("connected", mode === "speaking"),
      onError: () => report("disconnected", false),
    });
  } catch {
    report("disconnected", false);
  }
} else if (widget.dataset.status === "connected") {
  report("disconnected", false);
}
`
