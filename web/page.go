// File: web/page.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>

package web

// indexHTML is the coefficient input form served at /. It posts the
// coefficients back to /solve and plots the returned sample points.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Quadratic Equation Solver</title>
<style>
body { font-family: sans-serif; margin: 2em; }
label { display: inline-block; width: 6em; }
input[type=number] { width: 8em; }
#title { font-style: italic; }
canvas { border: 1px solid #ccc; margin-top: 1em; }
</style>
</head>
<body>
<h1>Quadratic Equation Solver</h1>
<p>Solves a&middot;x&sup2; + b&middot;x + c = 0 for integer coefficients.</p>
<form id="solve-form">
  <p><label for="coef_a">a</label><input type="number" id="coef_a" name="coef_a" value="1"></p>
  <p><label for="coef_b">b</label><input type="number" id="coef_b" name="coef_b" value="0"></p>
  <p><label for="coef_c">c</label><input type="number" id="coef_c" name="coef_c" value="0"></p>
  <p><button type="submit">Solve</button></p>
</form>
<p id="title"></p>
<p id="roots"></p>
<canvas id="plot" width="640" height="480"></canvas>
<script>
const form = document.getElementById("solve-form");
form.addEventListener("submit", async (ev) => {
  ev.preventDefault();
  const resp = await fetch("/solve", {
    method: "POST",
    headers: {"Content-Type": "application/x-www-form-urlencoded"},
    body: new URLSearchParams(new FormData(form)),
  });
  if (!resp.ok) {
    const err = await resp.json();
    document.getElementById("roots").textContent = err.message;
    return;
  }
  const data = await resp.json();
  document.getElementById("title").textContent = data.title;
  document.getElementById("roots").textContent = data.infinite
    ? "Infinite number of roots"
    : (data.roots.length ? "Roots: " + data.roots.join(", ") : "No real roots");
  plot(data);
});

function plot(data) {
  const canvas = document.getElementById("plot");
  const ctx = canvas.getContext("2d");
  ctx.clearRect(0, 0, canvas.width, canvas.height);
  const ys = data.points.map(p => p.y);
  const yMin = Math.min(...ys, 0), yMax = Math.max(...ys, 0);
  const sx = x => (x - data.x_min) / (data.x_max - data.x_min) * canvas.width;
  const sy = y => canvas.height - (y - yMin) / (yMax - yMin || 1) * canvas.height;
  ctx.strokeStyle = "#999";
  ctx.beginPath();
  ctx.moveTo(0, sy(0)); ctx.lineTo(canvas.width, sy(0));
  ctx.moveTo(sx(0), 0); ctx.lineTo(sx(0), canvas.height);
  ctx.stroke();
  ctx.strokeStyle = "#00f";
  ctx.beginPath();
  data.points.forEach((p, i) => i ? ctx.lineTo(sx(p.x), sy(p.y)) : ctx.moveTo(sx(p.x), sy(p.y)));
  ctx.stroke();
  ctx.fillStyle = "#f00";
  for (const r of data.roots) {
    ctx.beginPath();
    ctx.arc(sx(r), sy(0), 4, 0, 2 * Math.PI);
    ctx.fill();
  }
}
</script>
</body>
</html>
`
