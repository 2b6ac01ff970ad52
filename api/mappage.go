package api

import "html/template"

var mapPageTemplate = template.Must(template.New("map").Parse(mapPageHTML))

// mapPageHTML is the interactive shell: a leaflet map plus the threshold
// slider. The slider commits on release, every intermediate drag value is
// ignored.
const mapPageHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>US County Case Growth</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.6.0/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.6.0/dist/leaflet.js"></script>
<style>
  html, body { margin: 0; height: 100%; }
  #map { height: 100%; }
  #control {
    position: absolute; top: 10px; right: 10px; z-index: 1000;
    background: #fff; padding: 8px 12px; border-radius: 4px;
    box-shadow: 0 1px 4px rgba(0,0,0,0.4); font-family: sans-serif;
  }
</style>
</head>
<body>
<div id="map"></div>
<div id="control">
  <label for="red-rate">red rate: <span id="red-rate-value">{{.RedRateDefault}}</span></label><br>
  <input id="red-rate" type="range" min="{{.RedRateMin}}" max="{{.RedRateMax}}" step="0.01" value="{{.RedRateDefault}}">
</div>
<script>
var map = L.map('map');
L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
  attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);

var layer = L.layerGroup().addTo(map);

function draw(redRate) {
  fetch('/api/v1/map?red_rate=' + redRate)
    .then(function (resp) { return resp.json(); })
    .then(function (m) {
      map.setView([m.center_lat, m.center_lon], m.zoom);
      layer.clearLayers();
      m.circles.forEach(function (c) {
        L.circle([c.lat, c.lon], {
          radius: c.radius,
          color: c.color,
          fillColor: c.color,
          fillOpacity: 0.4,
          weight: 1
        }).bindTooltip(c.tooltip).addTo(layer);
      });
    });
}

var slider = document.getElementById('red-rate');
var label = document.getElementById('red-rate-value');

// label follows the drag, the map only re-renders on release
slider.addEventListener('input', function () { label.textContent = slider.value; });
slider.addEventListener('change', function () { draw(slider.value); });

draw(slider.value);
</script>
</body>
</html>
`
