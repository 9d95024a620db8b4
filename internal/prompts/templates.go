package prompts

// Placeholder markers substituted exactly once into each template.
const (
	transcriptMark = "{{TRANSCRIPT}}"
	notesMark      = "{{NOTES}}"
	dateMark       = "{{DATE}}"
	highlightsMark = "{{HIGHLIGHTS}}"
)

const highlightsTemplate = `Jesteś asystentem do streszczania spotkań koła naukowego.

Otrzymasz transkrypt spotkania w języku polskim. Twoim zadaniem jest:

1. Przeczytać całość uważnie
2. Wybrać 3-5 NAJWAŻNIEJSZYCH punktów/decyzji/ustaleń
3. Dla każdego punktu napisać:
   - Krótki tytuł (max 10 słów)
   - 1-2 zdania wyjaśnienia

Format wyjściowy (użyj tego dokładnie):

### Highlights

- **[Tytuł punktu 1]**: [1-2 zdania opisu co zostało ustalone/omówione]
- **[Tytuł punktu 2]**: [1-2 zdania opisu]
- **[Tytuł punktu 3]**: [1-2 zdania opisu]

### Tytuł spotkania (propozycja)
[Zaproponuj krótki, opisowy tytuł dla tego spotkania - max 10 słów]

---
TRANSKRYPT SPOTKANIA:

{{TRANSCRIPT}}`

const summaryTemplate = `Jesteś asystentem do tworzenia dokumentacji spotkań koła naukowego SKNWPL.

Otrzymasz transkrypt ze spotkania i opcjonalnie notatki.
Wygeneruj pełny dokument w formacie Markdown.

FORMAT WYJŚCIOWY (użyj DOKŁADNIE):

# {{DATE}} Spotkanie SKNWPL

### Agenda Spotkania

- [punkt 1]
- [punkt 2]
- [punkt 3]

### Audio

[Link zostanie dodany później]

### Highlights

- **[Tytuł 1]**: [Krótki opis - 1-2 zdania]
- **[Tytuł 2]**: [Krótki opis]
- **[Tytuł 3]**: [Krótki opis]

### Transkrypt

[Sformatowany transkrypt z timestampami w formacie [[HH:MM:SS]]]

---
NOTATKI/AGENDA:

{{NOTES}}

TRANSKRYPT:

{{TRANSCRIPT}}`

const metadataTemplate = `Jesteś asystentem do tworzenia opisów wideo na YouTube.

Wygeneruj metadane dla wideo ze spotkania koła naukowego:

1. Tytuł wideo (max 60 znaków, po polsku)
2. Opis wideo (z emoji, formatowaniem YouTube)
3. Tagi (5-10 słów kluczowych, po polsku)

FORMAT WYJŚCIOWY:

### Tytuł
[Tytuł wideo]

### Opis
[Opis ze spotkania, emoji, struktura]

### Tagi
tag1, tag2, tag3, tag4, tag5

---
INFORMACJE O SPOTKANIU:

Data: {{DATE}}
Highlights:
{{HIGHLIGHTS}}`
