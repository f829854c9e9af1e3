package script

// source holds one named template per message kind. Values reach the script
// through the js func only, never as raw text.
const source = `
{{define "scroll"}}(function() {
    const scroller = document.querySelector({{js .Sel.Scroller}});
    scroller.scrollBy({{.Msg.DX}}, {{.Msg.DY}});
})();{{end}}

{{define "top"}}(function() {
    const scroller = document.querySelector({{js .Sel.Scroller}});
    scroller.scrollTop = 0;
})();{{end}}

{{define "end"}}(function() {
    const scroller = document.querySelector({{js .Sel.Scroller}});
    scroller.scrollTop = scroller.scrollHeight;
})();{{end}}

{{define "show"}}(function() {
    const alphabet = {{js .Alphabet}};
    const labelClass = {{js .Class}};
    const labelAttr = {{js .Attr}};

    function generateLabel(index) {
        let label = '';
        let i = index + alphabet.length;
        while (i >= 0) {
            label = alphabet[i % alphabet.length] + label;
            i = Math.floor(i / alphabet.length) - 1;
        }
        while (label.length < 2) {
            label = alphabet[0] + label;
        }
        return label;
    }

    document.querySelectorAll('.' + labelClass).forEach(span => span.remove());

    document.querySelectorAll({{js .Sel.Clickable}}).forEach((el, index) => {
        const label = generateLabel(index);
        const rect = el.getBoundingClientRect();
        const span = document.createElement('span');

        span.textContent = label;
        span.className = labelClass;
        span.style.position = 'absolute';
        span.style.backgroundColor = 'yellow';
        span.style.color = 'black';
        span.style.fontSize = '12px';
        span.style.padding = '2px';
        span.style.borderRadius = '2px';
        span.style.zIndex = '9999';
        span.style.left = (rect.left + window.scrollX) + 'px';
        span.style.top = (rect.top + window.scrollY) + 'px';

        document.body.appendChild(span);

        el.setAttribute(labelAttr, label);
        el.addEventListener('click', () => span.remove(), { once: true });
    });
})();{{end}}

{{define "hide"}}(function() {
    const labelAttr = {{js .Attr}};
    document.querySelectorAll('.' + {{js .Class}}).forEach(span => span.remove());
    document.querySelectorAll('[' + labelAttr + ']').forEach(el => el.removeAttribute(labelAttr));
})();{{end}}

{{define "match"}}(function() {
    const labelAttr = {{js .Attr}};
    const text = {{js .Msg.Text}};
    const el = Array.from(document.querySelectorAll('[' + labelAttr + ']'))
        .find(candidate => candidate.getAttribute(labelAttr) === text);
    if (el) {
        el.click();
    }
})();{{end}}
`
