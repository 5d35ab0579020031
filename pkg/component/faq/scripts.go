package faq

import "github.com/goliatone/go-viewkit/pkg/component"

// Default library locations, used when the theme does not resolve the
// "faq.jquery" or "faq.mootools" asset keys.
const (
	DefaultJQuerySrc   = "/assets/js/jquery.min.js"
	DefaultMooToolsSrc = "/assets/js/mootools-core.min.js"
)

const (
	jqueryInit = `jQuery(function($){$(document).on("click","[data-faq-toggle]",function(e){` +
		`e.preventDefault();$("#"+$(this).attr("data-faq-toggle")).slideToggle("fast");});});`
	mootoolsInit = `window.addEvent("domready",function(){$$("[data-faq-toggle]").addEvent("click",function(e){` +
		`e.stop();var t=document.id(this.get("data-faq-toggle"));` +
		`t.setStyle("display",t.getStyle("display")=="none"?"block":"none");});});`
)

// toggleScripts returns the library and init scripts for toggle, in load
// order.
func toggleScripts(toggle Toggle, data component.RenderData) []component.Script {
	switch toggle {
	case ToggleMooTools:
		return []component.Script{
			{Src: data.AssetURL("faq.mootools", DefaultMooToolsSrc)},
			{Inline: mootoolsInit},
		}
	default:
		return []component.Script{
			{Src: data.AssetURL("faq.jquery", DefaultJQuerySrc)},
			{Inline: jqueryInit},
		}
	}
}
