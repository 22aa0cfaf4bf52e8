package pml

// SampleOrder is a valid two-pizza order in PML syntax. It seeds the
// interactive editor.
const SampleOrder = `{order number="123"}
  {pizza number="1"}
    {size}large{\size}
    {crust}hand-tossed{\crust}
    {type}custom{\type}
    {toppings area="0"}
      {item}pepperoni{\item}
      {item}extra cheese{\item}
    {\toppings}
    {toppings area="1"}
      {item}sausage{\item}
    {\toppings}
    {toppings area="2"}
      {item}mushrooms{\item}
    {\toppings}
  {\pizza}
  {pizza number="2"}
    {size}medium{\size}
    {crust}deep dish{\crust}
    {type}pepperoni feast{\type}
  {\pizza}
{\order}
`
